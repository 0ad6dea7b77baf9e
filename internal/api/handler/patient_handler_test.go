package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/clinicadelvalle/clinic-api/internal/api/handler"
	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

type stubPatientService struct {
	patients []*domain.Patient
	created  *domain.Patient
	err      error

	lastTerm  string
	lastInput ports.CreatePatientInput
}

func (s *stubPatientService) Search(ctx context.Context, term string) ([]*domain.Patient, error) {
	s.lastTerm = term
	return s.patients, s.err
}

func (s *stubPatientService) Get(ctx context.Context, id int64) (*domain.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPatientNotFound
}

func (s *stubPatientService) Create(ctx context.Context, input ports.CreatePatientInput) (*domain.Patient, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func samplePatient() *domain.Patient {
	return &domain.Patient{
		ID:           7,
		FullName:     "Ana García",
		Identifier:   "CURP-001",
		BirthDate:    time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
		Sex:          domain.SexFemale,
		RegisteredAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPatientHandler_Search(t *testing.T) {
	svc := &stubPatientService{patients: []*domain.Patient{samplePatient()}}
	e := newEcho()
	e.GET("/patients", handler.NewPatientHandler(svc).Search)

	rec := doJSON(e, http.MethodGet, "/patients?search=ana", "")
	wantStatus(t, rec, http.StatusOK)
	if svc.lastTerm != "ana" {
		t.Errorf("search term not forwarded: %q", svc.lastTerm)
	}

	var body []map[string]any
	decodeBody(t, rec, &body)
	if len(body) != 1 {
		t.Fatalf("expected one patient, got %d", len(body))
	}
	if body[0]["fechaNacimiento"] != "1990-05-12" {
		t.Errorf("birth date not rendered as calendar date: %v", body[0]["fechaNacimiento"])
	}
	if body[0]["fechaAlta"] != "2024-06-01" {
		t.Errorf("registration date not rendered as calendar date: %v", body[0]["fechaAlta"])
	}
}

func TestPatientHandler_SearchEmptyIsArray(t *testing.T) {
	e := newEcho()
	e.GET("/patients", handler.NewPatientHandler(&stubPatientService{}).Search)

	rec := doJSON(e, http.MethodGet, "/patients", "")
	wantStatus(t, rec, http.StatusOK)
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("empty result must render as [], got %q", got)
	}
}

func TestPatientHandler_GetNotFound(t *testing.T) {
	e := newEcho()
	e.GET("/patients/:id", handler.NewPatientHandler(&stubPatientService{}).Get)

	rec := doJSON(e, http.MethodGet, "/patients/99", "")
	wantStatus(t, rec, http.StatusNotFound)
	wantMessage(t, rec, "Paciente no encontrado.")
}

func TestPatientHandler_GetBadID(t *testing.T) {
	e := newEcho()
	e.GET("/patients/:id", handler.NewPatientHandler(&stubPatientService{}).Get)

	rec := doJSON(e, http.MethodGet, "/patients/abc", "")
	wantStatus(t, rec, http.StatusBadRequest)
	wantMessage(t, rec, "El identificador no es válido.")
}

func TestPatientHandler_Create(t *testing.T) {
	svc := &stubPatientService{created: samplePatient()}
	e := newEcho()
	e.POST("/patients", handler.NewPatientHandler(svc).Create)

	rec := doJSON(e, http.MethodPost, "/patients",
		`{"nombreCompleto":"Ana García","identificador":"CURP-001","fechaNacimiento":"1990-05-12","sexo":"F"}`)
	wantStatus(t, rec, http.StatusCreated)

	if loc := rec.Header().Get("Location"); loc != "/patients/7" {
		t.Errorf("Location = %q, want /patients/7", loc)
	}
	if svc.lastInput.Identifier != "CURP-001" {
		t.Errorf("input not forwarded: %+v", svc.lastInput)
	}
}

func TestPatientHandler_CreateDuplicate(t *testing.T) {
	svc := &stubPatientService{err: domain.Validation("Ya existe un paciente con ese identificador.")}
	e := newEcho()
	e.POST("/patients", handler.NewPatientHandler(svc).Create)

	rec := doJSON(e, http.MethodPost, "/patients",
		`{"nombreCompleto":"Ana","identificador":"CURP-001","fechaNacimiento":"1990-05-12","sexo":"F"}`)
	wantStatus(t, rec, http.StatusBadRequest)
	wantMessage(t, rec, "Ya existe un paciente con ese identificador.")
}

func TestPatientHandler_UnexpectedErrorIsProblem(t *testing.T) {
	svc := &stubPatientService{err: context.DeadlineExceeded}
	e := newEcho()
	e.GET("/patients", handler.NewPatientHandler(svc).Search)

	rec := doJSON(e, http.MethodGet, "/patients", "")
	wantStatus(t, rec, http.StatusInternalServerError)

	var body struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Status int    `json:"status"`
	}
	decodeBody(t, rec, &body)
	if body.Title != "Error interno del servidor" || body.Status != http.StatusInternalServerError {
		t.Errorf("unexpected problem body %+v", body)
	}
	if body.Detail != "Ocurrió un error inesperado al procesar la solicitud." {
		t.Errorf("detail leaks internals: %q", body.Detail)
	}
}
