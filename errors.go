package analytic

import "github.com/pkg/errors"

var (
	// ErrUnsupported is returned when an operation is not defined
	// for the given combination of function types.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrDegree is returned by root solving when no closed form exists.
	ErrDegree = errors.New("no closed form solution for degree")
)
