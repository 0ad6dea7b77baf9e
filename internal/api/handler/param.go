package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses the :id path parameter. A non-integer value is rejected
// before any service call.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "El identificador no es válido.")
	}
	return id, nil
}

// queryInt parses an optional integer query parameter, returning fallback
// when the parameter is absent or malformed.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
