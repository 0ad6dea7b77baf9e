package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

// UserHandler handles HTTP requests for login-account administration.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Correo         string `json:"correo"         validate:"required,email"`
	NombreCompleto string `json:"nombreCompleto" validate:"required"`
	Password       string `json:"password"       validate:"required"`
}

type updateUserRequest struct {
	Correo         string `json:"correo"         validate:"required,email"`
	NombreCompleto string `json:"nombreCompleto" validate:"required"`
	Password       string `json:"password,omitempty"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID             int64  `json:"id"`
	Correo         string `json:"correo"`
	NombreCompleto string `json:"nombreCompleto"`
	Activo         bool   `json:"activo"`
}

func newUserResponse(u *domain.UserAccount) userResponse {
	return userResponse{
		ID:             u.ID,
		Correo:         u.Email,
		NombreCompleto: u.FullName,
		Activo:         u.Active,
	}
}

// Search handles GET /users?search=&includeInactive=.
//
// @Summary      Search user accounts
// @Tags         users
// @Produce      json
// @Param        search           query     string  false  "Substring over name or email"
// @Param        includeInactive  query     bool    false  "Include deactivated accounts"
// @Success      200              {array}   userResponse
// @Failure      500              {object}  problemResponse
// @Router       /users [get]
func (h *UserHandler) Search(c echo.Context) error {
	includeInactive := c.QueryParam("includeInactive") == "true"
	accounts, err := h.service.Search(c.Request().Context(), c.QueryParam("search"), includeInactive)
	if err != nil {
		return err
	}

	list := make([]userResponse, 0, len(accounts))
	for _, u := range accounts {
		list = append(list, newUserResponse(u))
	}
	return c.JSON(http.StatusOK, list)
}

// Create handles POST /users.
//
// @Summary      Register a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  messageResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "La solicitud no es válida.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.service.Create(c.Request().Context(), ports.UserInput{
		Email:    req.Correo,
		FullName: req.NombreCompleto,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/users/%d", account.ID))
	return c.JSON(http.StatusCreated, newUserResponse(account))
}

// Update handles PUT /users/:id. A blank password keeps the current one.
//
// @Summary      Update a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Account id"
// @Param        body  body      updateUserRequest  true  "Account details"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "La solicitud no es válida.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.service.Update(c.Request().Context(), id, ports.UserInput{
		Email:    req.Correo,
		FullName: req.NombreCompleto,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(account))
}

// Deactivate handles DELETE /users/:id — a soft delete.
//
// @Summary      Deactivate a user account
// @Tags         users
// @Param        id  path  int  true  "Account id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Deactivate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
