package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

const (
	msgFullNameRequired   = "El nombre completo es obligatorio."
	msgIdentifierRequired = "El identificador es obligatorio."
	msgBirthDateInvalid   = "La fecha de nacimiento no es válida."
	msgSexInvalid         = "El sexo debe ser 'M' o 'F'."
	msgDuplicateID        = "Ya existe un paciente con ese identificador."
)

type PatientService struct {
	repo   ports.PatientRepository
	cache  ports.ClinicCache
	logger zerolog.Logger
}

// NewPatientService builds the patient service. cache may be nil, in which
// case every read goes to the store.
func NewPatientService(repo ports.PatientRepository, cache ports.ClinicCache, logger zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, cache: cache, logger: logger}
}

func (s *PatientService) Search(ctx context.Context, term string) ([]*domain.Patient, error) {
	return s.repo.Search(ctx, strings.TrimSpace(term))
}

func (s *PatientService) Get(ctx context.Context, id int64) (*domain.Patient, error) {
	if s.cache != nil {
		if p, ok := s.cache.GetPatient(ctx, id); ok {
			return p, nil
		}
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetPatient(ctx, p)
	}
	return p, nil
}

// Create validates the raw input, normalizes the sex code and registers the
// patient. Unique-identifier conflicts surface as a ValidationError so the
// handler renders them as a client error, not a server failure.
func (s *PatientService) Create(ctx context.Context, input ports.CreatePatientInput) (*domain.Patient, error) {
	if !requiredText(input.FullName) {
		return nil, domain.Validation(msgFullNameRequired)
	}
	if !requiredText(input.Identifier) {
		return nil, domain.Validation(msgIdentifierRequired)
	}

	birthDate, err := parseDate(input.BirthDate)
	if err != nil {
		return nil, domain.Validation(msgBirthDateInvalid)
	}

	sex := domain.NormalizeSex(input.Sex)
	if !domain.ValidSex(sex) {
		return nil, domain.Validation(msgSexInvalid)
	}

	patient := &domain.Patient{
		FullName:   strings.TrimSpace(input.FullName),
		Identifier: strings.TrimSpace(input.Identifier),
		BirthDate:  birthDate,
		Sex:        sex,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		if err == domain.ErrDuplicateIdentifier {
			return nil, domain.Validation(msgDuplicateID)
		}
		s.logger.Error().Err(err).Str("identifier", patient.Identifier).Msg("failed to create patient")
		return nil, err
	}

	s.logger.Info().Int64("patient_id", patient.ID).Str("identifier", patient.Identifier).Msg("patient created")
	return patient, nil
}
