package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

// MedicHandler handles HTTP requests for medic administration.
type MedicHandler struct {
	service ports.MedicService
}

func NewMedicHandler(service ports.MedicService) *MedicHandler {
	return &MedicHandler{service: service}
}

type medicRequest struct {
	NombreCompleto string `json:"nombreCompleto" validate:"required"`
	Especialidad   string `json:"especialidad"   validate:"required"`
	Cedula         string `json:"cedula"         validate:"required"`
}

type medicResponse struct {
	ID             int64  `json:"id"`
	NombreCompleto string `json:"nombreCompleto"`
	Especialidad   string `json:"especialidad"`
	Cedula         string `json:"cedula"`
	Activo         bool   `json:"activo"`
}

func newMedicResponse(m *domain.Medic) medicResponse {
	return medicResponse{
		ID:             m.ID,
		NombreCompleto: m.FullName,
		Especialidad:   m.Specialty,
		Cedula:         m.License,
		Activo:         m.Active,
	}
}

// Search handles GET /medics?search=&includeInactive=.
//
// @Summary      Search medics
// @Tags         medics
// @Produce      json
// @Param        search           query     string  false  "Substring over name or license"
// @Param        includeInactive  query     bool    false  "Include deactivated medics"
// @Success      200              {array}   medicResponse
// @Failure      500              {object}  problemResponse
// @Router       /medics [get]
func (h *MedicHandler) Search(c echo.Context) error {
	includeInactive := c.QueryParam("includeInactive") == "true"
	medics, err := h.service.Search(c.Request().Context(), c.QueryParam("search"), includeInactive)
	if err != nil {
		return err
	}

	list := make([]medicResponse, 0, len(medics))
	for _, m := range medics {
		list = append(list, newMedicResponse(m))
	}
	return c.JSON(http.StatusOK, list)
}

// Create handles POST /medics.
//
// @Summary      Register a medic
// @Tags         medics
// @Accept       json
// @Produce      json
// @Param        body  body      medicRequest  true  "Medic details"
// @Success      201   {object}  medicResponse
// @Failure      400   {object}  messageResponse
// @Router       /medics [post]
func (h *MedicHandler) Create(c echo.Context) error {
	var req medicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "La solicitud no es válida.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	medic, err := h.service.Create(c.Request().Context(), ports.MedicInput{
		FullName:  req.NombreCompleto,
		Specialty: req.Especialidad,
		License:   req.Cedula,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/medics/%d", medic.ID))
	return c.JSON(http.StatusCreated, newMedicResponse(medic))
}

// Update handles PUT /medics/:id.
//
// @Summary      Update a medic
// @Tags         medics
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Medic id"
// @Param        body  body      medicRequest  true  "Medic details"
// @Success      200   {object}  medicResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /medics/{id} [put]
func (h *MedicHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req medicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "La solicitud no es válida.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	medic, err := h.service.Update(c.Request().Context(), id, ports.MedicInput{
		FullName:  req.NombreCompleto,
		Specialty: req.Especialidad,
		License:   req.Cedula,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newMedicResponse(medic))
}

// Deactivate handles DELETE /medics/:id — a soft delete.
//
// @Summary      Deactivate a medic
// @Tags         medics
// @Param        id  path  int  true  "Medic id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /medics/{id} [delete]
func (h *MedicHandler) Deactivate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
