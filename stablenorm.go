// SPDX-License-Identifier: MIT

// Package vectorwise: scale-robust Euclidean-norm kernels. Three variants,
// all returning the same mathematical value as sqrt(sum x_i^2) but finite
// and accurate where the naive sum of squares under- or overflows:
//
//   - stableNormOf: running-rescale accumulation (LAPACK dlassq style) —
//     one pass, one division per growth of the running maximum.
//   - blueNormOf: Blue's algorithm — one pass over three accumulators
//     (small / medium / big ranges) with fixed IEEE-754 double thresholds,
//     then a two-accumulator recombination.
//   - hypotNormOf: sequential hypot accumulation — slowest, bulletproof.
//
// All loops are fixed left-to-right; errors propagate from the underlying
// expression only.

package vectorwise

import "math"

// Blue's algorithm constants for IEEE-754 binary64, precomputed from the
// format parameters (radix 2, 53 digits, exponent range [-1021, 1024]):
//   blueB1  = 2^-511  — below it, values square into the small accumulator
//   blueB2  = 2^486   — above it, values square into the big accumulator
//   blueS1M = 2^511   — scale applied to small-range values
//   blueS2M = 2^-538  — scale applied to big-range values
var (
	blueB1  = math.Ldexp(1, -511)
	blueB2  = math.Ldexp(1, 486)
	blueS1M = math.Ldexp(1, 511)
	blueS2M = math.Ldexp(1, -538)

	// blueRelErr bounds the relative error of dropping the smaller of two
	// combined accumulators: sqrt of the unit roundoff.
	blueRelErr = math.Sqrt(math.Ldexp(1, -52))
)

// stableNormOf accumulates scale and ssq such that the running sum of
// squares equals scale^2 * ssq with scale the largest magnitude seen so
// far; each growth of scale rescales ssq instead of the data.
// Complexity: O(n), one pass.
func stableNormOf(v VecView) (float64, error) {
	var scale, x, ax, ratio float64
	ssq := 1.0
	var err error
	for k, n := 0, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		if ax = math.Abs(x); ax == 0 {
			continue
		}
		if scale < ax {
			// New running maximum: fold the old sum under the new scale.
			ratio = scale / ax
			ssq = 1 + ssq*ratio*ratio
			scale = ax
		} else {
			ratio = ax / scale
			ssq += ratio * ratio
		}
	}

	return scale * math.Sqrt(ssq), nil
}

// blueNormOf implements Blue's scaled two/three-accumulator norm: values
// are squared into one of three bins depending on magnitude (pre-scaled so
// no square can overflow or lose to underflow), then the two largest bins
// are recombined with a relative-error cutoff.
// Complexity: O(n), one pass plus O(1) recombination.
func blueNormOf(v VecView) (float64, error) {
	var asml, amed, abig float64 // small / medium / big range accumulators
	var x, ax float64
	var err error
	for k, n := 0, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		ax = math.Abs(x)
		switch {
		case ax > blueB2:
			abig += (ax * blueS2M) * (ax * blueS2M)
		case ax < blueB1:
			asml += (ax * blueS1M) * (ax * blueS1M)
		default:
			amed += ax * ax
		}
	}

	// Recombine: keep the two most significant accumulators as
	// (abig, amed) with abig >= amed, both unscaled to the true range.
	switch {
	case abig > 0:
		abig = math.Sqrt(abig) / blueS2M
		if amed > 0 {
			amed = math.Sqrt(amed)
		} else {
			return abig, nil
		}
	case asml > 0:
		if amed > 0 {
			abig = math.Sqrt(amed)
			amed = math.Sqrt(asml) / blueS1M
		} else {
			return math.Sqrt(asml) / blueS1M, nil
		}
	default:
		return math.Sqrt(amed), nil
	}
	if amed > abig {
		abig, amed = amed, abig
	}
	// The smaller accumulator contributes nothing beyond roundoff once it
	// is blueRelErr smaller than the larger one.
	if amed <= abig*blueRelErr {
		return abig, nil
	}
	ratio := amed / abig

	return abig * math.Sqrt(1+ratio*ratio), nil
}

// hypotNormOf folds the elements through math.Hypot, which never over- or
// underflows on intermediate results.
// Complexity: O(n) hypot evaluations.
func hypotNormOf(v VecView) (float64, error) {
	var acc, x float64
	var err error
	for k, n := 0, v.Len(); k < n; k++ {
		if x, err = v.At(k); err != nil {
			return 0, err
		}
		acc = math.Hypot(acc, x)
	}

	return acc, nil
}
