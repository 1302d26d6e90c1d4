package errors

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrMalformedData = errors.New("malformed data")
	ErrDecode        = errors.New("image decode error")
)

type Error struct {
	Err     error
	Message string
	Code    string
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Wrap(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
		Code:    codeFor(err),
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrMalformedData):
		return "MALFORMED_DATA"
	case errors.Is(err, ErrDecode):
		return "DECODE_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}
