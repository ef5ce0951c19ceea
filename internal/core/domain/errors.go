package domain

import "fmt"

// ErrorKind discriminates domain failures. Every kind maps to exactly one
// HTTP status at the API boundary; nothing else in the codebase decides
// status codes.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "NotFound"
	KindPolicyViolation ErrorKind = "PolicyViolation"
	KindValidation      ErrorKind = "ValidationFailure"
	KindAuthExpired     ErrorKind = "AuthExpired"
	KindAuthMalformed   ErrorKind = "AuthMalformed"
	KindRoleDenied      ErrorKind = "RoleDenied"
	KindInternal        ErrorKind = "Internal"
)

// Error is the single tagged error type crossing the service boundary.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFoundf builds a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Policyf builds a KindPolicyViolation error. Ownership mismatches, admin
// immunity, locked accounts and bad credentials all surface through here
// as HTTP 400, never 403 or 404.
func Policyf(format string, args ...any) *Error {
	return &Error{Kind: KindPolicyViolation, Message: fmt.Sprintf(format, args...)}
}

// Validationf builds a KindValidation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}
