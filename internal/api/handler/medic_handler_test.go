package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/clinicadelvalle/clinic-api/internal/api/handler"
	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

type stubMedicService struct {
	medics      []*domain.Medic
	created     *domain.Medic
	err         error
	deactivated int64
}

func (s *stubMedicService) Search(ctx context.Context, term string, includeInactive bool) ([]*domain.Medic, error) {
	return s.medics, s.err
}

func (s *stubMedicService) Create(ctx context.Context, input ports.MedicInput) (*domain.Medic, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubMedicService) Update(ctx context.Context, id int64, input ports.MedicInput) (*domain.Medic, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubMedicService) Deactivate(ctx context.Context, id int64) error {
	s.deactivated = id
	return s.err
}

func TestMedicHandler_Create(t *testing.T) {
	svc := &stubMedicService{created: &domain.Medic{
		ID: 3, FullName: "Dr. Ramírez", Specialty: "Cardiología", License: "CED-123", Active: true,
	}}
	e := newEcho()
	e.POST("/medics", handler.NewMedicHandler(svc).Create)

	rec := doJSON(e, http.MethodPost, "/medics",
		`{"nombreCompleto":"Dr. Ramírez","especialidad":"Cardiología","cedula":"CED-123"}`)
	wantStatus(t, rec, http.StatusCreated)
	if loc := rec.Header().Get("Location"); loc != "/medics/3" {
		t.Errorf("Location = %q", loc)
	}

	var body map[string]any
	decodeBody(t, rec, &body)
	if body["activo"] != true {
		t.Errorf("new medic should render active: %v", body["activo"])
	}
}

func TestMedicHandler_CreateMissingFields(t *testing.T) {
	e := newEcho()
	e.POST("/medics", handler.NewMedicHandler(&stubMedicService{}).Create)

	rec := doJSON(e, http.MethodPost, "/medics", `{"nombreCompleto":"Dr. Ramírez"}`)
	wantStatus(t, rec, http.StatusBadRequest)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &body)
	if body.Message == "" {
		t.Fatal("expected a combined field message")
	}
}

func TestMedicHandler_UpdateMissing(t *testing.T) {
	svc := &stubMedicService{err: domain.ErrMedicNotFound}
	e := newEcho()
	e.PUT("/medics/:id", handler.NewMedicHandler(svc).Update)

	rec := doJSON(e, http.MethodPut, "/medics/404",
		`{"nombreCompleto":"Dr. Ramírez","especialidad":"Cardiología","cedula":"CED-123"}`)
	wantStatus(t, rec, http.StatusNotFound)
	wantMessage(t, rec, "Médico no encontrado.")
}

func TestMedicHandler_Deactivate(t *testing.T) {
	svc := &stubMedicService{}
	e := newEcho()
	e.DELETE("/medics/:id", handler.NewMedicHandler(svc).Deactivate)

	rec := doJSON(e, http.MethodDelete, "/medics/3", "")
	wantStatus(t, rec, http.StatusNoContent)
	if svc.deactivated != 3 {
		t.Errorf("deactivate id = %d", svc.deactivated)
	}
}
