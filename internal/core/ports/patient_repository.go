package ports

import (
	"context"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// PatientRepository defines the persistence interface for patients.
type PatientRepository interface {
	// Search returns patients whose full name or identifier contains term
	// (case-insensitive), ordered by full name ascending. An empty term
	// returns every patient.
	Search(ctx context.Context, term string) ([]*domain.Patient, error)
	// FindByID returns domain.ErrPatientNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Patient, error)
	// Create inserts the patient and fills in the store-assigned ID and
	// registration date. A unique-identifier violation is reported as
	// domain.ErrDuplicateIdentifier.
	Create(ctx context.Context, p *domain.Patient) error
}
