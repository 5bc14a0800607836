package errors

import (
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements the unpacker interface, it is flattened and
// instead of the error itself, its content is appended. This means that the
// result of Append(Append(a, b), c) is the same as Append(a, b, c).
func Append(errs ...error) error {
	var bundle bundledError
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if u, ok := e.(unpacker); ok {
			bundle.errs = append(bundle.errs, u.Unpack()...)
		} else {
			bundle.errs = append(bundle.errs, e)
		}
	}
	switch len(bundle.errs) {
	case 0:
		return nil
	case 1:
		return bundle.errs[0]
	default:
		return &bundle
	}
}

// bundledError represents a collection of errors that are clubbed together.
type bundledError struct {
	errs []error
}

var _ unpacker = (*bundledError)(nil)

func (e *bundledError) Unpack() []error {
	return e.errs
}

func (e *bundledError) Error() string {
	descs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		descs = append(descs, err.Error())
	}
	return strings.Join(descs, "; ")
}

// ABCICode returns the code of the first bundled error. Fail fast semantics
// make the first encountered issue the most important one.
func (e *bundledError) ABCICode() uint32 {
	if len(e.errs) == 0 {
		return SuccessABCICode
	}
	return abciCode(e.errs[0])
}

// Contains first checks if any of the bundled errors is of given kind. All
// bundled errors are tested, not only the first one.
func (e *bundledError) Contains(kind *Error) bool {
	for _, err := range e.errs {
		if kind.Is(err) {
			return true
		}
	}
	return false
}

type unpacker interface {
	Unpack() []error
}
