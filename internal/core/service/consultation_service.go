package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

// maxConsultationRows caps per-patient listings regardless of the requested
// limit.
const maxConsultationRows = 50

const (
	msgPatientIDInvalid = "El identificador del paciente no es válido."
	msgNotesRequired    = "Las notas son obligatorias."
	msgDateInvalid      = "La fecha proporcionada no es válida."
	msgRangeInverted    = "La fecha inicial no puede ser mayor que la fecha final."
)

type ConsultationService struct {
	repo   ports.ConsultationRepository
	cache  ports.ClinicCache
	logger zerolog.Logger
}

// NewConsultationService builds the consultation service. cache may be nil.
func NewConsultationService(repo ports.ConsultationRepository, cache ports.ClinicCache, logger zerolog.Logger) *ConsultationService {
	return &ConsultationService{repo: repo, cache: cache, logger: logger}
}

// ListByPatient returns the most recent consultations for a patient. A
// non-positive limit falls back to the cap; anything above the cap is
// clamped.
func (s *ConsultationService) ListByPatient(ctx context.Context, patientID int64, limit int) ([]*domain.Consultation, error) {
	if limit <= 0 || limit > maxConsultationRows {
		limit = maxConsultationRows
	}

	if s.cache != nil {
		if list, ok := s.cache.GetConsultations(ctx, patientID, limit); ok {
			return list, nil
		}
	}

	list, err := s.repo.ListByPatient(ctx, patientID, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetConsultations(ctx, patientID, limit, list)
	}
	return list, nil
}

func (s *ConsultationService) History(ctx context.Context, filter ports.HistoryFilter) ([]*domain.ConsultationWithPatient, error) {
	from, to, err := dateRange(filter.StartDate, filter.EndDate)
	if err != nil {
		if err == errRangeInverted {
			return nil, domain.Validation(msgRangeInverted)
		}
		return nil, domain.Validation(msgDateInvalid)
	}
	return s.repo.History(ctx, from, to)
}

// Create validates the input and registers the consultation. The timestamp
// defaults to the current UTC time when the caller omits it.
func (s *ConsultationService) Create(ctx context.Context, input ports.CreateConsultationInput) (*domain.Consultation, error) {
	if input.PatientID <= 0 {
		return nil, domain.Validation(msgPatientIDInvalid)
	}
	if !requiredText(input.Notes) {
		return nil, domain.Validation(msgNotesRequired)
	}

	occurredAt := time.Now().UTC()
	if strings.TrimSpace(input.Date) != "" {
		t, err := parseTimestamp(input.Date)
		if err != nil {
			return nil, domain.Validation(msgDateInvalid)
		}
		occurredAt = t
	}

	consultation := &domain.Consultation{
		PatientID:  input.PatientID,
		OccurredAt: occurredAt,
		Notes:      strings.TrimSpace(input.Notes),
	}

	if err := s.repo.Create(ctx, consultation); err != nil {
		if err != domain.ErrPatientNotFound {
			s.logger.Error().Err(err).Int64("patient_id", input.PatientID).Msg("failed to create consultation")
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidatePatient(ctx, consultation.PatientID)
	}

	s.logger.Info().Int64("consultation_id", consultation.ID).Int64("patient_id", consultation.PatientID).Msg("consultation created")
	return consultation, nil
}
