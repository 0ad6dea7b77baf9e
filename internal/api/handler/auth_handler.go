package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicadelvalle/clinic-api/internal/api/metrics"
	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userSummary struct {
	ID     int64  `json:"id"`
	Correo string `json:"correo"`
	Nombre string `json:"nombreCompleto"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Usuario *userSummary `json:"usuario,omitempty"`
}

// Login validates credentials through the store's access procedure. No token
// or session is created; the response carries only the verdict message and
// the matched user.
//
// @Summary      Validate credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  problemResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "La solicitud no es válida.")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err.(type) {
		case *domain.ValidationError:
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		case *domain.AccessDeniedError:
			metrics.LoginAttemptsTotal.WithLabelValues("denied").Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("accepted").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message: result.Message,
		Usuario: &userSummary{
			ID:     result.User.ID,
			Correo: result.User.Email,
			Nombre: result.User.FullName,
		},
	})
}
