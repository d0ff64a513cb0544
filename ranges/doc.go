// Package ranges builds the parameter sweeps of a DDSCAT parameter file.
//
// Three value types cover the sweep lines a parameter file carries:
//
//   - [Range]:           wavelength and effective-radius sweeps with
//     linear, inverse, logarithmic or tabulated spacing
//   - [Rotation]:        target-rotation sweeps, always linear
//   - [ScatteringPlane]: one scattering plane (fixed phi, theta min/max/step)
//
// Ranges and rotations materialize their points at construction and are
// immutable afterwards. To sweep different bounds, derive a new value with
// WithBounds; the original is left unchanged.
//
// Each type formats itself as the single line that appears in the
// parameter file, with reals printed to six decimals and fields separated
// by two spaces:
//
//	r, err := ranges.New(0.2, 0.8, 4)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r) // 0.200000  0.800000  4  LIN
//	for wave := range r.All() {
//	    // ...
//	}
//
// Every construction or parse failure satisfies
// errors.Is(err, [ErrConfiguration]) so a generator can refuse to emit a
// line without inspecting the specific cause.
package ranges
