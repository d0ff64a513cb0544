package ranges

import (
	"fmt"
	"iter"
)

// Rotation is a linear sweep of target orientation angles. It behaves like
// a ModeLinear Range but formats without the mode token, matching the
// rotation lines of a parameter file.
type Rotation struct {
	r Range
}

// NewRotation builds a linear sweep of num angles from first to last.
// The only failure is num < 1.
func NewRotation(first, last float64, num int) (Rotation, error) {
	r, err := New(first, last, num)
	if err != nil {
		return Rotation{}, err
	}

	return Rotation{r: r}, nil
}

// WithBounds returns a new rotation sweep; rot itself is unchanged.
func (rot Rotation) WithBounds(first, last float64, num int) (Rotation, error) {
	return NewRotation(first, last, num)
}

// Range returns the rotation as a general ModeLinear range.
func (rot Rotation) Range() Range { return rot.r }

// First returns the starting angle.
func (rot Rotation) First() float64 { return rot.r.First() }

// Last returns the final angle.
func (rot Rotation) Last() float64 { return rot.r.Last() }

// Num returns the number of angles requested.
func (rot Rotation) Num() int { return rot.r.Num() }

// Len returns the number of angles a pass yields.
func (rot Rotation) Len() int { return rot.r.Len() }

// Values returns a copy of the angles.
func (rot Rotation) Values() []float64 { return rot.r.Values() }

// All returns a restartable iterator over the angles.
func (rot Rotation) All() iter.Seq[float64] { return rot.r.All() }

// String formats the sweep as "<first>  <last>  <num>".
func (rot Rotation) String() string {
	return fmt.Sprintf("%f  %f  %d", rot.r.first, rot.r.last, rot.r.num)
}
