// Package testutil holds floating-point assertions shared by sequence tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireUniformSteps fails t if consecutive differences of data deviate
// from the first difference by more than eps. Slices shorter than three
// elements are trivially uniform.
func RequireUniformSteps(t *testing.T, data []float64, eps float64) {
	t.Helper()

	if len(data) < 3 {
		return
	}

	step := data[1] - data[0]
	for i := 2; i < len(data); i++ {
		d := data[i] - data[i-1]
		if math.Abs(d-step) > eps {
			t.Fatalf("step %d: got %v, want %v (eps %v)", i, d, step, eps)
		}
	}
}

// RequireMonotonic fails t unless data moves strictly in the direction of
// sign (positive for ascending, negative for descending). A zero sign
// requires all elements to be equal.
func RequireMonotonic(t *testing.T, data []float64, sign float64) {
	t.Helper()

	for i := 1; i < len(data); i++ {
		d := data[i] - data[i-1]

		switch {
		case sign > 0 && d <= 0, sign < 0 && d >= 0, sign == 0 && d != 0:
			t.Fatalf("index %d: %v -> %v breaks monotonic order (sign %v)", i, data[i-1], data[i], sign)
		}
	}
}

// Map returns f applied to each element of data.
func Map(data []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = f(v)
	}

	return out
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}
