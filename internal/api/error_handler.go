package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// messageResponse is the envelope for bespoke client-facing errors.
type messageResponse struct {
	Message string `json:"message"`
}

// problemResponse is the problem-document shape used for infrastructure
// failures (health probe, uncategorized errors).
type problemResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps validation, not-found and access-denied errors to their HTTP
//     status with the user-facing Spanish message.
//   - Logs unexpected errors internally without leaking driver details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Echo's own errors (bind failures, 404 from router, etc.)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, messageResponse{Message: fmt.Sprintf("%v", he.Message)})
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, messageResponse{Message: ve.Message})
			return
		}

		var ae *domain.AccessDeniedError
		if errors.As(err, &ae) {
			_ = c.JSON(http.StatusUnauthorized, messageResponse{Message: ae.Message})
			return
		}

		if msg, ok := notFoundMessage(err); ok {
			_ = c.JSON(http.StatusNotFound, messageResponse{Message: msg})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, problemResponse{
			Title:  "Error interno del servidor",
			Detail: "Ocurrió un error inesperado al procesar la solicitud.",
			Status: http.StatusInternalServerError,
		})
	}
}

func notFoundMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrPatientNotFound):
		return "Paciente no encontrado.", true
	case errors.Is(err, domain.ErrConsultationNotFound):
		return "Consulta no encontrada.", true
	case errors.Is(err, domain.ErrMedicNotFound):
		return "Médico no encontrado.", true
	case errors.Is(err, domain.ErrUserNotFound):
		return "Usuario no encontrado.", true
	case errors.Is(err, domain.ErrTodoNotFound):
		return "Tarea no encontrada.", true
	}
	return "", false
}
