package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

type stubPatientRepo struct {
	patients  []*domain.Patient
	createErr error
	created   *domain.Patient
	findCalls int
}

func (s *stubPatientRepo) Search(ctx context.Context, term string) ([]*domain.Patient, error) {
	return s.patients, nil
}

func (s *stubPatientRepo) FindByID(ctx context.Context, id int64) (*domain.Patient, error) {
	s.findCalls++
	for _, p := range s.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPatientNotFound
}

func (s *stubPatientRepo) Create(ctx context.Context, p *domain.Patient) error {
	if s.createErr != nil {
		return s.createErr
	}
	p.ID = 1
	p.RegisteredAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s.created = p
	return nil
}

type stubCache struct {
	patients      map[int64]*domain.Patient
	consultations map[int64][]*domain.Consultation
	invalidated   []int64
}

func newStubCache() *stubCache {
	return &stubCache{
		patients:      make(map[int64]*domain.Patient),
		consultations: make(map[int64][]*domain.Consultation),
	}
}

func (s *stubCache) GetPatient(ctx context.Context, id int64) (*domain.Patient, bool) {
	p, ok := s.patients[id]
	return p, ok
}

func (s *stubCache) SetPatient(ctx context.Context, p *domain.Patient) {
	s.patients[p.ID] = p
}

func (s *stubCache) GetConsultations(ctx context.Context, patientID int64, limit int) ([]*domain.Consultation, bool) {
	list, ok := s.consultations[patientID]
	return list, ok
}

func (s *stubCache) SetConsultations(ctx context.Context, patientID int64, limit int, list []*domain.Consultation) {
	s.consultations[patientID] = list
}

func (s *stubCache) InvalidatePatient(ctx context.Context, patientID int64) {
	delete(s.patients, patientID)
	delete(s.consultations, patientID)
	s.invalidated = append(s.invalidated, patientID)
}

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	return verr.Message
}

func TestPatientService_Create(t *testing.T) {
	repo := &stubPatientRepo{}
	svc := NewPatientService(repo, nil, zerolog.Nop())

	p, err := svc.Create(context.Background(), ports.CreatePatientInput{
		FullName:   "  Ana García  ",
		Identifier: "CURP-001",
		BirthDate:  "1990-05-12",
		Sex:        "f",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FullName != "Ana García" {
		t.Errorf("full name not trimmed: %q", p.FullName)
	}
	if p.Sex != domain.SexFemale {
		t.Errorf("sex not normalized, got %q", p.Sex)
	}
	if p.ID != 1 {
		t.Errorf("store-assigned ID not propagated, got %d", p.ID)
	}
	if p.BirthDate != time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC) {
		t.Errorf("unexpected birth date %v", p.BirthDate)
	}
}

func TestPatientService_CreateValidation(t *testing.T) {
	cases := []struct {
		name  string
		input ports.CreatePatientInput
		want  string
	}{
		{
			name:  "blank full name",
			input: ports.CreatePatientInput{FullName: "  ", Identifier: "X", BirthDate: "1990-01-01", Sex: "M"},
			want:  "El nombre completo es obligatorio.",
		},
		{
			name:  "blank identifier",
			input: ports.CreatePatientInput{FullName: "Ana", Identifier: "", BirthDate: "1990-01-01", Sex: "M"},
			want:  "El identificador es obligatorio.",
		},
		{
			name:  "malformed birth date",
			input: ports.CreatePatientInput{FullName: "Ana", Identifier: "X", BirthDate: "12/05/1990", Sex: "M"},
			want:  "La fecha de nacimiento no es válida.",
		},
		{
			name:  "unknown sex code",
			input: ports.CreatePatientInput{FullName: "Ana", Identifier: "X", BirthDate: "1990-01-01", Sex: "Z"},
			want:  "El sexo debe ser 'M' o 'F'.",
		},
	}

	svc := NewPatientService(&stubPatientRepo{}, nil, zerolog.Nop())
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), c.input)
			if got := validationMessage(t, err); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestPatientService_CreateDuplicateIdentifier(t *testing.T) {
	repo := &stubPatientRepo{createErr: domain.ErrDuplicateIdentifier}
	svc := NewPatientService(repo, nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreatePatientInput{
		FullName: "Ana", Identifier: "X", BirthDate: "1990-01-01", Sex: "M",
	})
	if got := validationMessage(t, err); got != "Ya existe un paciente con ese identificador." {
		t.Errorf("unexpected message %q", got)
	}
}

func TestPatientService_GetCacheReadThrough(t *testing.T) {
	repo := &stubPatientRepo{patients: []*domain.Patient{{ID: 7, FullName: "Luis"}}}
	cache := newStubCache()
	svc := NewPatientService(repo, cache, zerolog.Nop())

	// First read misses the cache and hits the store.
	if _, err := svc.Get(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected one store read, got %d", repo.findCalls)
	}

	// Second read is served from cache.
	if _, err := svc.Get(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected cached read, store reads: %d", repo.findCalls)
	}
}

func TestPatientService_GetNotFound(t *testing.T) {
	svc := NewPatientService(&stubPatientRepo{}, nil, zerolog.Nop())
	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}
