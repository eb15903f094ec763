package apperr

import "net/http"

// Error is a domain error carrying the HTTP status it maps to plus a message
// key and substitution args for rendering.
type Error struct {
	Status int
	Key    string
	Args   []any
}

func (e *Error) Error() string { return e.Key }

func NotFound(key string, args ...any) *Error {
	return &Error{Status: http.StatusNotFound, Key: key, Args: args}
}

// Conflict covers username/email uniqueness violations. The API contract maps
// them to 400, same as the original register endpoint.
func Conflict(key string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Key: key, Args: args}
}

func Unauthorized(key string, args ...any) *Error {
	return &Error{Status: http.StatusUnauthorized, Key: key, Args: args}
}

func Forbidden(key string, args ...any) *Error {
	return &Error{Status: http.StatusForbidden, Key: key, Args: args}
}

func Validation(key string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Key: key, Args: args}
}
