package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Controllers map them to HTTP
// statuses in the app-level error handler.
var (
	// ErrSlotUnavailable is returned when a booking targets a time already
	// taken by a pending or confirmed appointment.
	ErrSlotUnavailable = errors.New("horário indisponível")

	// ErrNotAuthorized is returned when a login succeeds against the
	// credential store but the account is not an enabled admin.
	ErrNotAuthorized = errors.New("acesso não autorizado")

	// ErrNotFound is returned when a referenced record does not resolve.
	ErrNotFound = errors.New("registro não encontrado")

	// ErrInvalidCredentials is returned for a bad email/password pair.
	ErrInvalidCredentials = errors.New("credenciais inválidas")
)

// ValidationError reports a missing or malformed field on a form payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
