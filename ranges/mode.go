package ranges

import (
	"fmt"
	"strings"
)

// Mode identifies the spacing law of a Range.
type Mode int

const (
	// ModeLinear spaces points evenly between first and last.
	ModeLinear Mode = iota

	// ModeInverse spaces points evenly in 1/x between 1/first and 1/last.
	ModeInverse

	// ModeLogarithmic spaces points evenly in log10(x).
	ModeLogarithmic

	// ModeTabulated uses an explicit table of values.
	ModeTabulated
)

var modeTokens = [...]string{
	ModeLinear:      "LIN",
	ModeInverse:     "INV",
	ModeLogarithmic: "LOG",
	ModeTabulated:   "TAB",
}

// String returns the parameter-file token for m ("LIN", "INV", "LOG", "TAB").
func (m Mode) String() string {
	if m.valid() {
		return modeTokens[m]
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool {
	return m >= ModeLinear && m <= ModeTabulated
}

// ParseMode converts a parameter-file token to a Mode. Matching ignores
// case and surrounding quotes, so "'LIN'" and "lin" both yield ModeLinear.
func ParseMode(s string) (Mode, error) {
	token := strings.ToUpper(strings.Trim(strings.TrimSpace(s), `'"`))
	for m, t := range modeTokens {
		if t == token {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
