package array

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned when an index or range falls outside the
	// bounds accepted by an operation.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned for a negative capacity.
	ErrInvalidArgument = errors.New("invalid argument")
)

func indexError(i, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d with size %d", i, size)
}

func rangeError(from, to, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "range [%d, %d) with size %d", from, to, size)
}
