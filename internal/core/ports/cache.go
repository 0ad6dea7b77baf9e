package ports

import (
	"context"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// ClinicCache is a best-effort, non-authoritative read-through cache over
// patients and per-patient consultation lists. Implementations must treat
// every failure as a miss; callers never act on cache errors.
type ClinicCache interface {
	GetPatient(ctx context.Context, id int64) (*domain.Patient, bool)
	SetPatient(ctx context.Context, p *domain.Patient)
	GetConsultations(ctx context.Context, patientID int64, limit int) ([]*domain.Consultation, bool)
	SetConsultations(ctx context.Context, patientID int64, limit int, list []*domain.Consultation)
	// InvalidatePatient drops the cached consultation lists (and patient
	// entry) for the given patient after a write.
	InvalidatePatient(ctx context.Context, patientID int64)
}
