package diagnostics

import (
	"errors"
	"fmt"

	"github.com/olalang/olac/internal/token"
)

// ErrorCode identifies a user-facing semantic error class. Codes are stable:
// tests and embedding tools match on them rather than on message text.
type ErrorCode string

const (
	ErrA001 ErrorCode = "A001" // duplicate declaration
	ErrA002 ErrorCode = "A002" // undeclared variable
	ErrA003 ErrorCode = "A003" // function not found
	ErrA004 ErrorCode = "A004" // argument type mismatch
	ErrA005 ErrorCode = "A005" // argument count mismatch
)

var messages = map[ErrorCode]string{
	ErrA001: "duplicate declaration of '%s'",
	ErrA002: "undeclared variable '%s'",
	ErrA003: "function '%s' not found",
	ErrA004: "argument %d of call to '%s': expected %s, got %s",
	ErrA005: "call to '%s' expects %d arguments, got %d",
}

// DiagnosticError is a user-facing semantic error. It carries the token of
// the offending construct so the reporter can point at a source position.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
}

// NewError formats the message template registered for code with args.
func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	tmpl, ok := messages[code]
	if !ok {
		tmpl = "unknown error"
	}
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: fmt.Sprintf(tmpl, args...),
	}
}

func (e *DiagnosticError) Error() string {
	if e.Token.Line > 0 {
		return fmt.Sprintf("[%s] line %d:%d: %s", e.Code, e.Token.Line, e.Token.Column, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// InternalError marks an invariant violation: a bug in the parser or in an
// earlier stage of the pass, never a problem with the user's program. It is
// deliberately a distinct type so it can never be mistaken for a diagnostic.
type InternalError struct {
	Message string
}

// Internalf builds an InternalError with a formatted message.
func Internalf(format string, args ...interface{}) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}

// IsInternal reports whether err is (or wraps) an invariant violation.
func IsInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}
