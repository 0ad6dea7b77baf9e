package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicadelvalle/clinic-api/internal/api/metrics"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

// ConsultationHandler handles HTTP requests for consultation operations.
type ConsultationHandler struct {
	service ports.ConsultationService
}

func NewConsultationHandler(service ports.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

// ListByPatient handles GET /patients/:id/consultations?limit=.
//
// @Summary      List a patient's consultations
// @Tags         consultations
// @Produce      json
// @Param        id     path      int  true   "Patient id"
// @Param        limit  query     int  false  "Row cap, clamped to 50"
// @Success      200    {array}   consultationResponse
// @Failure      500    {object}  problemResponse
// @Router       /patients/{id}/consultations [get]
func (h *ConsultationHandler) ListByPatient(c echo.Context) error {
	patientID, err := pathID(c)
	if err != nil {
		return err
	}

	limit := queryInt(c, "limit", 0)
	consultations, err := h.service.ListByPatient(c.Request().Context(), patientID, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newConsultationListResponse(consultations))
}

// History handles GET /consultations?startDate=&endDate=.
//
// @Summary      Consultation history with patient summaries
// @Tags         consultations
// @Produce      json
// @Param        startDate  query     string  false  "Lower bound (yyyy-MM-dd, inclusive)"
// @Param        endDate    query     string  false  "Upper bound (yyyy-MM-dd, inclusive through end of day)"
// @Success      200        {array}   historyEntryResponse
// @Failure      400        {object}  messageResponse
// @Failure      500        {object}  problemResponse
// @Router       /consultations [get]
func (h *ConsultationHandler) History(c echo.Context) error {
	entries, err := h.service.History(c.Request().Context(), ports.HistoryFilter{
		StartDate: c.QueryParam("startDate"),
		EndDate:   c.QueryParam("endDate"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newHistoryResponse(entries))
}

// Create handles POST /consultations.
//
// @Summary      Register a consultation
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Param        body  body      createConsultationRequest  true  "Consultation details"
// @Success      201   {object}  consultationResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  problemResponse
// @Router       /consultations [post]
func (h *ConsultationHandler) Create(c echo.Context) error {
	var req createConsultationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "La solicitud no es válida.")
	}

	consultation, err := h.service.Create(c.Request().Context(), ports.CreateConsultationInput{
		PatientID: req.PacienteID,
		Notes:     req.Notas,
		Date:      req.Fecha,
	})
	if err != nil {
		return err
	}

	metrics.ConsultationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, newConsultationResponse(consultation))
}
