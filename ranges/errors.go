package ranges

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ddscat/spacing"
)

// ErrConfiguration is the root of every error returned by this package.
var ErrConfiguration = errors.New("ranges: configuration error")

// Errors returned by range constructors and parsers. Every error returned
// by this package matches ErrConfiguration as well as one of these.
var (
	ErrMissingTable = fmt.Errorf("%w: tabulated range requires a table", ErrConfiguration)
	ErrUnknownMode  = fmt.Errorf("%w: unknown spacing mode", ErrConfiguration)
	ErrSyntax       = fmt.Errorf("%w: malformed range line", ErrConfiguration)

	ErrInvalidCount     = spacing.ErrInvalidCount
	ErrZeroBound        = spacing.ErrZeroBound
	ErrSignChange       = spacing.ErrSignChange
	ErrNonPositiveBound = spacing.ErrNonPositiveBound
)

// configError ties a spacing failure into the ErrConfiguration tree.
func configError(err error) error {
	if err == nil || errors.Is(err, ErrConfiguration) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrConfiguration, err)
}
