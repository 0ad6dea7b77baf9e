package ports

import (
	"context"
	"time"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// ConsultationRepository defines the persistence interface for consultations.
type ConsultationRepository interface {
	// ListByPatient returns up to limit consultations for the patient,
	// newest-first. The caller is responsible for clamping limit.
	ListByPatient(ctx context.Context, patientID int64, limit int) ([]*domain.Consultation, error)
	// History returns consultations joined with their patient summary,
	// newest-first, bounded inclusively by from and to when non-nil.
	History(ctx context.Context, from, to *time.Time) ([]*domain.ConsultationWithPatient, error)
	// Create verifies the referenced patient exists and inserts the
	// consultation in a single transaction, filling in the store-assigned
	// ID. Returns domain.ErrPatientNotFound when the patient is missing.
	Create(ctx context.Context, c *domain.Consultation) error
}
