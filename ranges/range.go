package ranges

import (
	"fmt"
	"iter"
	"slices"

	"github.com/cwbudde/algo-ddscat/spacing"
)

// Range is a sweep of real values, such as the wavelengths or effective
// radii of a parameter file.
//
// A Range is immutable: its points are computed once by New and every
// accessor returns copies. Use WithBounds to sweep different bounds.
type Range struct {
	first  float64
	last   float64
	num    int
	mode   Mode
	table  []float64
	values []float64
}

// Option configures Range construction.
type Option func(*config)

type config struct {
	mode  Mode
	table []float64
}

func defaultConfig() config {
	return config{mode: ModeLinear}
}

// WithMode selects the spacing law. The default is ModeLinear.
func WithMode(mode Mode) Option {
	return func(cfg *config) {
		cfg.mode = mode
	}
}

// WithTable supplies the values of a ModeTabulated range. The slice is
// copied. It is ignored for every other mode.
func WithTable(values []float64) Option {
	return func(cfg *config) {
		cfg.table = slices.Clone(values)
	}
}

// New builds a range of num points from first to last.
//
// The points are materialized before New returns. New fails with an error
// matching ErrConfiguration when num < 1, when a ModeTabulated range has
// no table, when ModeInverse has a zero bound, when ModeLogarithmic has a
// non-positive bound, or when mode is not one of the declared modes.
func New(first, last float64, num int, opts ...Option) (Range, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return build(first, last, num, cfg.mode, cfg.table)
}

// NewTable builds a ModeTabulated range from values. First, last and num
// are taken from the table so that the formatted line describes it.
func NewTable(values []float64) (Range, error) {
	if len(values) == 0 {
		return Range{}, ErrMissingTable
	}

	return New(values[0], values[len(values)-1], len(values),
		WithMode(ModeTabulated), WithTable(values))
}

func build(first, last float64, num int, mode Mode, table []float64) (Range, error) {
	if num < 1 {
		return Range{}, configError(ErrInvalidCount)
	}

	r := Range{
		first: first,
		last:  last,
		num:   num,
		mode:  mode,
	}

	var err error

	switch mode {
	case ModeLinear:
		r.values, err = spacing.Linear(first, last, num)
	case ModeInverse:
		r.values, err = spacing.Inverse(first, last, num)
	case ModeLogarithmic:
		r.values, err = spacing.Logarithmic(first, last, num)
	case ModeTabulated:
		if len(table) == 0 {
			return Range{}, ErrMissingTable
		}

		// first/last/num are kept for the formatted line only.
		r.table = slices.Clone(table)
		r.values = slices.Clone(table)
	default:
		return Range{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	if err != nil {
		return Range{}, configError(err)
	}

	return r, nil
}

// WithBounds returns a new range with the same mode (and table, for
// ModeTabulated) but different bounds and count. r itself is unchanged.
func (r Range) WithBounds(first, last float64, num int) (Range, error) {
	return build(first, last, num, r.mode, r.table)
}

// First returns the first bound.
func (r Range) First() float64 { return r.first }

// Last returns the last bound.
func (r Range) Last() float64 { return r.last }

// Num returns the requested point count. For ModeTabulated ranges this is
// the value given at construction, not necessarily the table length.
func (r Range) Num() int { return r.num }

// Mode returns the spacing law.
func (r Range) Mode() Mode { return r.mode }

// Table returns a copy of the table of a ModeTabulated range, or nil.
func (r Range) Table() []float64 { return slices.Clone(r.table) }

// Len returns the number of points a pass over the range yields.
func (r Range) Len() int { return len(r.values) }

// Values returns a copy of the materialized points.
func (r Range) Values() []float64 { return slices.Clone(r.values) }

// All returns an iterator over the points. Each call starts a new pass
// from the first point, so the sequence can be ranged over any number of
// times with identical results.
func (r Range) All() iter.Seq[float64] {
	values := r.values

	return func(yield func(float64) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// String formats the range as its parameter-file line, e.g.
// "0.200000  0.800000  4  LIN".
func (r Range) String() string {
	return fmt.Sprintf("%f  %f  %d  %s", r.first, r.last, r.num, r.mode)
}
