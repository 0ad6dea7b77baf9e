package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicadelvalle/clinic-api/internal/api/metrics"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

// PatientHandler handles HTTP requests for patient operations.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// Search handles GET /patients?search=.
//
// @Summary      Search patients
// @Tags         patients
// @Produce      json
// @Param        search  query     string  false  "Substring over full name or identifier"
// @Success      200     {array}   patientResponse
// @Failure      500     {object}  problemResponse
// @Router       /patients [get]
func (h *PatientHandler) Search(c echo.Context) error {
	patients, err := h.service.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPatientListResponse(patients))
}

// Get handles GET /patients/:id.
//
// @Summary      Get a patient by id
// @Tags         patients
// @Produce      json
// @Param        id   path      int  true  "Patient id"
// @Success      200  {object}  patientResponse
// @Failure      404  {object}  messageResponse
// @Router       /patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	patient, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPatientResponse(patient))
}

// Create handles POST /patients.
//
// @Summary      Register a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body      createPatientRequest  true  "Patient details"
// @Success      201   {object}  patientResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  problemResponse
// @Router       /patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req createPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "La solicitud no es válida.")
	}

	patient, err := h.service.Create(c.Request().Context(), ports.CreatePatientInput{
		FullName:   req.NombreCompleto,
		Identifier: req.Identificador,
		BirthDate:  req.FechaNacimiento,
		Sex:        req.Sexo,
	})
	if err != nil {
		return err
	}

	metrics.PatientsCreatedTotal.Inc()

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/patients/%d", patient.ID))
	return c.JSON(http.StatusCreated, newPatientResponse(patient))
}
