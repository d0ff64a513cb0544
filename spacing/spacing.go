package spacing

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spacing functions.
var (
	ErrInvalidCount     = errors.New("spacing: point count must be >= 1")
	ErrZeroBound        = errors.New("spacing: inverse spacing requires non-zero bounds")
	ErrSignChange       = errors.New("spacing: inverse spacing requires bounds of the same sign")
	ErrNonPositiveBound = errors.New("spacing: logarithmic spacing requires positive bounds")
)

// Linear returns n evenly spaced values from first to last inclusive.
// For n == 1 the result is [first].
func Linear(first, last float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}

	out := make([]float64, n)
	LinearTo(out, first, last)

	return out, nil
}

// LinearTo fills dst with len(dst) evenly spaced values from first to last
// inclusive. An empty dst is left untouched.
//
// The ramp is built in place as index*step + first, then the final
// element is set to last exactly. LinearTo does not allocate.
func LinearTo(dst []float64, first, last float64) {
	n := len(dst)
	if n == 0 {
		return
	}

	if n == 1 {
		dst[0] = first
		return
	}

	step := (last - first) / float64(n-1)

	for i := range dst {
		dst[i] = float64(i)
	}

	vecmath.ScaleBlock(dst, dst, step)

	for i := range dst {
		dst[i] += first
	}

	dst[n-1] = last
}

// Inverse returns n values that are evenly spaced in reciprocal space:
//
//	out[i] = 1 / linspace(1/first, 1/last, n)[i]
//
// This is the natural grid for wavenumber-style sweeps. Both bounds must be
// non-zero and share a sign, otherwise the reciprocal grid crosses zero.
func Inverse(first, last float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}

	if first == 0 || last == 0 {
		return nil, ErrZeroBound
	}

	if math.Signbit(first) != math.Signbit(last) {
		return nil, ErrSignChange
	}

	out, err := Linear(1/first, 1/last, n)
	if err != nil {
		return nil, err
	}

	for i, v := range out {
		out[i] = 1 / v
	}

	return out, nil
}

// Logarithmic returns n values that are evenly spaced in decade space:
//
//	out[i] = 10^linspace(log10(first), log10(last), n)[i]
//
// Both bounds must be strictly positive.
func Logarithmic(first, last float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}

	if first <= 0 || last <= 0 {
		return nil, ErrNonPositiveBound
	}

	out, err := Linear(math.Log10(first), math.Log10(last), n)
	if err != nil {
		return nil, err
	}

	for i, v := range out {
		out[i] = math.Pow(10, v)
	}

	return out, nil
}
