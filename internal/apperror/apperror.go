// Package apperror defines the structured error every service raises for
// expected failures. The response layer maps it onto the HTTP envelope; any
// error that is not an AppError surfaces as a 500.
package apperror

import "net/http"

type AppError struct {
	StatusCode int
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

func New(statusCode int, message string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}

// InvalidCredentials is the single error for both "no such user" and "wrong
// password", so a login response never reveals which check failed.
func InvalidCredentials() *AppError {
	return New(http.StatusUnauthorized, "invalid email or password")
}
