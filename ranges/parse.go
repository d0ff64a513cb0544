package ranges

import (
	"fmt"
	"strconv"
	"strings"
)

// lineFields splits a parameter-file line into its value fields. Anything
// after the first '=' is the trailing comment and is dropped. Fields are
// returned as written; ParseMode removes the quotes around a mode token.
func lineFields(line string) []string {
	values, _, _ := strings.Cut(line, "=")

	return strings.Fields(values)
}

func expectFields(line string, fields []string, want int, layout string) error {
	if len(fields) != want {
		return fmt.Errorf("%w: want %d fields (%s), got %d in %q", ErrSyntax, want, layout, len(fields), line)
	}

	return nil
}

func parseReal(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", ErrSyntax, name, s, err)
	}

	return v, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: num %q: %w", ErrSyntax, s, err)
	}

	return n, nil
}

func parseBounds(fields []string) (first, last float64, num int, err error) {
	if first, err = parseReal("first", fields[0]); err != nil {
		return 0, 0, 0, err
	}

	if last, err = parseReal("last", fields[1]); err != nil {
		return 0, 0, 0, err
	}

	if num, err = parseCount(fields[2]); err != nil {
		return 0, 0, 0, err
	}

	return first, last, num, nil
}

// Parse reads a range line of the form "first last num mode", such as
// "0.5 0.5 1 'LIN' = wavelengths". The mode always comes from the line;
// opts can supply the table that a "TAB" line refers to.
func Parse(line string, opts ...Option) (Range, error) {
	fields := lineFields(line)
	if err := expectFields(line, fields, 4, "first last num mode"); err != nil {
		return Range{}, err
	}

	first, last, num, err := parseBounds(fields)
	if err != nil {
		return Range{}, err
	}

	mode, err := ParseMode(fields[3])
	if err != nil {
		return Range{}, err
	}

	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithMode(mode))

	return New(first, last, num, all...)
}

// ParseRotation reads a rotation line of the form "first last num".
func ParseRotation(line string) (Rotation, error) {
	fields := lineFields(line)
	if err := expectFields(line, fields, 3, "first last num"); err != nil {
		return Rotation{}, err
	}

	first, last, num, err := parseBounds(fields)
	if err != nil {
		return Rotation{}, err
	}

	return NewRotation(first, last, num)
}

// ParseScatteringPlane reads a plane line of the form
// "phi theta_min theta_max d_theta". The step is kept as written.
func ParseScatteringPlane(line string) (ScatteringPlane, error) {
	fields := lineFields(line)
	if err := expectFields(line, fields, 4, "phi theta_min theta_max d_theta"); err != nil {
		return ScatteringPlane{}, err
	}

	var angles [3]float64
	for i, name := range []string{"phi", "theta_min", "theta_max"} {
		v, err := parseReal(name, fields[i])
		if err != nil {
			return ScatteringPlane{}, err
		}

		angles[i] = v
	}

	return NewScatteringPlaneText(angles[0], angles[1], angles[2], fields[3]), nil
}
