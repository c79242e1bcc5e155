package sparkid

import (
	"errors"
	"fmt"
)

// Machine-readable error codes carried by Error. Callers (and the HTTP
// layer) match on these rather than on message text.
const (
	CodeInvalidPrefix    = "INVALID_PREFIX"
	CodeInvalidID        = "INVALID_ID"
	CodeInvalidAlphabet  = "INVALID_ALPHABET"
	CodeInvalidConfig    = "INVALID_CONFIG"
	CodeInvalidCount     = "INVALID_COUNT"
	CodeCountTooLarge    = "COUNT_TOO_LARGE"
	CodeGenerationFailed = "GENERATION_FAILED"
)

// Error is the error type returned by package operations for violations of
// the identifier rules. Failures of the underlying random source are wrapped
// plain errors instead; CodeOf returns "" for those.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return "sparkid: " + e.Message
}

func newError(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the machine-readable code of err, or "" when err is nil or
// not a sparkid error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
