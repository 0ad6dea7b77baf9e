package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

// TodoHandler serves the demo todo list kept from the first backend
// iteration. Its error envelope uses the original {"error": ...} contract
// rather than {"message": ...}.
type TodoHandler struct {
	repo ports.TodoRepository
}

func NewTodoHandler(repo ports.TodoRepository) *TodoHandler {
	return &TodoHandler{repo: repo}
}

type todoErrorResponse struct {
	Error string `json:"error"`
}

// List handles GET /todos.
func (h *TodoHandler) List(c echo.Context) error {
	todos, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todos)
}

// Get handles GET /todos/:id.
func (h *TodoHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	todo, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Create handles POST /todos.
func (h *TodoHandler) Create(c echo.Context) error {
	var todo domain.Todo
	if err := c.Bind(&todo); err != nil {
		return c.JSON(http.StatusBadRequest, todoErrorResponse{Error: "La solicitud no es válida"})
	}
	if strings.TrimSpace(todo.Title) == "" {
		return c.JSON(http.StatusBadRequest, todoErrorResponse{Error: "El título es obligatorio"})
	}

	if err := h.repo.Create(c.Request().Context(), &todo); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/todos/%d", todo.ID))
	return c.JSON(http.StatusCreated, todo)
}

// Update handles PUT /todos/:id.
func (h *TodoHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var todo domain.Todo
	if err := c.Bind(&todo); err != nil {
		return c.JSON(http.StatusBadRequest, todoErrorResponse{Error: "La solicitud no es válida"})
	}
	todo.ID = id

	if err := h.repo.Update(c.Request().Context(), &todo); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /todos/:id.
func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
