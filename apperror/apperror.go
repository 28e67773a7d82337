// Package apperror defines the error taxonomy shared by the service layer.
//
// Services return these typed errors instead of raw gorm or HTTP errors so
// that the controllers can map each variant to a status code in one place.
// The sentinel errors support errors.Is checks across wrapping.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken   = errors.New("invalid identity token")
	ErrAuthentication = errors.New("authentication required")
	ErrValidation     = errors.New("validation failed")
	ErrUserNotFound   = errors.New("user not found")
	ErrSkillNotFound  = errors.New("skill not found")
	ErrPersistence    = errors.New("persistence failure")
)

// AppError carries a client-safe message alongside the taxonomy sentinel.
// Cause holds the underlying error (for example the gorm error) so it can be
// logged server-side; it is never sent to clients.
type AppError struct {
	Err     error  // one of the sentinel errors above
	Message string // client-safe, human-readable message
	Field   string // optional: field that caused a validation error
	Cause   error  // optional: underlying error, logged but never returned
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidToken reports a failed identity-token verification.
func InvalidToken(message string) *AppError {
	return &AppError{
		Err:     ErrInvalidToken,
		Message: message,
	}
}

// ValidationFailed reports malformed input before any persistence attempt.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// UserNotFound reports a missing user row for an authenticated identifier.
func UserNotFound() *AppError {
	return &AppError{
		Err:     ErrUserNotFound,
		Message: "User not found",
	}
}

// SkillNotFound reports a skill that does not exist for the caller. A skill
// owned by another user is reported identically, so callers cannot probe
// other users' skill ids.
func SkillNotFound() *AppError {
	return &AppError{
		Err:     ErrSkillNotFound,
		Message: "Skill not found",
	}
}

// Persistence reports a datastore failure. The client message stays generic;
// the underlying cause is preserved for server-side logging only.
func Persistence(op string, cause error) *AppError {
	return &AppError{
		Err:     ErrPersistence,
		Message: fmt.Sprintf("Failed to %s", op),
		Cause:   cause,
	}
}
