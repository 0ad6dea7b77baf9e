package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Failures surface as a
// domain.ValidationError so the central error handler renders them as a 400
// with the combined message.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return domain.Validation(strings.Join(msgs, " "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable Spanish
// message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio.", field)
	case "email":
		return fmt.Sprintf("El campo %s debe ser un correo válido.", field)
	case "gt":
		return fmt.Sprintf("El campo %s debe ser mayor que %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s.", field, fe.Param())
	default:
		return fmt.Sprintf("El campo %s no es válido (%s).", field, fe.Tag())
	}
}
