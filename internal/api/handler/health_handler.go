package handler

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the root banner and the database health probe.
type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type messageResponse struct {
	Message string `json:"message"`
}

type problemResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// Root handles GET /.
//
// @Summary      API banner
// @Tags         health
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "API de la clínica lista."})
}

// Database handles GET /health/database — verifies store connectivity.
//
// @Summary      Database connectivity probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      503  {object}  problemResponse
// @Router       /health/database [get]
func (h *HealthHandler) Database(c echo.Context) error {
	if err := h.db.PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, problemResponse{
			Title:  "Error al conectar con la base de datos",
			Detail: err.Error(),
			Status: http.StatusServiceUnavailable,
		})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Conexión con la base de datos exitosa."})
}
