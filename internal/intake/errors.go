package intake

import "errors"

var (
	// ErrMissingEmail is returned when the email field is empty
	ErrMissingEmail = errors.New("email is required")

	// ErrInvalidEmail is returned when the email does not look like an address
	ErrInvalidEmail = errors.New("please enter a valid email address")

	// ErrNameTooLong is returned when the name exceeds maxNameLength
	ErrNameTooLong = errors.New("name is too long")

	// ErrInjuriesTooLong is returned when the injuries note exceeds maxInjuriesLength
	ErrInjuriesTooLong = errors.New("injuries note is too long")
)

// FieldFor returns the form field a validation error refers to, or ""
// when err is not a validation error.
func FieldFor(err error) string {
	switch {
	case errors.Is(err, ErrMissingEmail), errors.Is(err, ErrInvalidEmail):
		return "email"
	case errors.Is(err, ErrNameTooLong):
		return "name"
	case errors.Is(err, ErrInjuriesTooLong):
		return "injuries"
	default:
		return ""
	}
}
