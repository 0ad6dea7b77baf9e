package ports

import (
	"context"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// MedicInput carries the writable fields of a medic for create and update.
type MedicInput struct {
	FullName  string
	Specialty string
	License   string
}

// MedicService defines the business operations over medics.
type MedicService interface {
	Search(ctx context.Context, term string, includeInactive bool) ([]*domain.Medic, error)
	Create(ctx context.Context, input MedicInput) (*domain.Medic, error)
	Update(ctx context.Context, id int64, input MedicInput) (*domain.Medic, error)
	Deactivate(ctx context.Context, id int64) error
}
