package ports

import (
	"context"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// CreatePatientInput carries the raw request values for patient registration.
// Dates arrive as text and are validated by the service.
type CreatePatientInput struct {
	FullName   string
	Identifier string
	BirthDate  string
	Sex        string
}

// PatientService defines the business operations over patients.
type PatientService interface {
	Search(ctx context.Context, term string) ([]*domain.Patient, error)
	Get(ctx context.Context, id int64) (*domain.Patient, error)
	Create(ctx context.Context, input CreatePatientInput) (*domain.Patient, error)
}
