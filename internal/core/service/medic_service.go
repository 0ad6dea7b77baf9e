package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

const (
	msgSpecialtyRequired = "La especialidad es obligatoria."
	msgLicenseRequired   = "La cédula profesional es obligatoria."
	msgDuplicateLicense  = "Ya existe un médico con esa cédula."
)

type MedicService struct {
	repo   ports.MedicRepository
	logger zerolog.Logger
}

func NewMedicService(repo ports.MedicRepository, logger zerolog.Logger) *MedicService {
	return &MedicService{repo: repo, logger: logger}
}

func (s *MedicService) Search(ctx context.Context, term string, includeInactive bool) ([]*domain.Medic, error) {
	return s.repo.Search(ctx, strings.TrimSpace(term), includeInactive)
}

func (s *MedicService) Create(ctx context.Context, input ports.MedicInput) (*domain.Medic, error) {
	if err := validateMedicInput(input); err != nil {
		return nil, err
	}

	medic := &domain.Medic{
		FullName:  strings.TrimSpace(input.FullName),
		Specialty: strings.TrimSpace(input.Specialty),
		License:   strings.TrimSpace(input.License),
		Active:    true,
	}

	if err := s.repo.Create(ctx, medic); err != nil {
		if err == domain.ErrDuplicateLicense {
			return nil, domain.Validation(msgDuplicateLicense)
		}
		s.logger.Error().Err(err).Str("license", medic.License).Msg("failed to create medic")
		return nil, err
	}

	s.logger.Info().Int64("medic_id", medic.ID).Msg("medic created")
	return medic, nil
}

func (s *MedicService) Update(ctx context.Context, id int64, input ports.MedicInput) (*domain.Medic, error) {
	if err := validateMedicInput(input); err != nil {
		return nil, err
	}

	medic, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	medic.FullName = strings.TrimSpace(input.FullName)
	medic.Specialty = strings.TrimSpace(input.Specialty)
	medic.License = strings.TrimSpace(input.License)

	if err := s.repo.Update(ctx, medic); err != nil {
		if err == domain.ErrDuplicateLicense {
			return nil, domain.Validation(msgDuplicateLicense)
		}
		return nil, err
	}
	return medic, nil
}

func (s *MedicService) Deactivate(ctx context.Context, id int64) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("medic_id", id).Msg("medic deactivated")
	return nil
}

func validateMedicInput(input ports.MedicInput) error {
	if !requiredText(input.FullName) {
		return domain.Validation(msgFullNameRequired)
	}
	if !requiredText(input.Specialty) {
		return domain.Validation(msgSpecialtyRequired)
	}
	if !requiredText(input.License) {
		return domain.Validation(msgLicenseRequired)
	}
	return nil
}
