package ports

import (
	"context"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// MedicRepository defines the persistence interface for medics.
type MedicRepository interface {
	// Search returns medics whose name or license contains term
	// (case-insensitive), ordered by name. Inactive medics are excluded
	// unless includeInactive is true.
	Search(ctx context.Context, term string, includeInactive bool) ([]*domain.Medic, error)
	// FindByID returns domain.ErrMedicNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Medic, error)
	// Create inserts the medic and fills in the store-assigned ID. A unique
	// license violation is reported as domain.ErrDuplicateLicense.
	Create(ctx context.Context, m *domain.Medic) error
	Update(ctx context.Context, m *domain.Medic) error
	// Deactivate flips Active to false, keeping the row.
	Deactivate(ctx context.Context, id int64) error
}
