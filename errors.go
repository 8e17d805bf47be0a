package timewindow

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidArgument is returned when a window is built from an unsupported input.
	ErrInvalidArgument = errors.New("could not parse arguments, must be a string or an object")

	// ErrMalformed is returned by the strict parsing and validation helpers.
	ErrMalformed = errors.New("malformed time window")
)

func invalidArgument(input any) error {
	return errors.Wrapf(ErrInvalidArgument, "got %T", input)
}
