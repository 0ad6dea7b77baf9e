package domain

// ValidationError is a client-caused input failure. Message is the exact
// Spanish text rendered to the caller in a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation builds a ValidationError with the given user-facing message.
func Validation(message string) error {
	return &ValidationError{Message: message}
}
