package ports

import (
	"context"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// UserRepository defines the persistence interface for login accounts.
type UserRepository interface {
	// Search returns accounts whose name or email contains term
	// (case-insensitive), ordered by name. Inactive accounts are excluded
	// unless includeInactive is true.
	Search(ctx context.Context, term string, includeInactive bool) ([]*domain.UserAccount, error)
	// FindByID returns domain.ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.UserAccount, error)
	// Create inserts the account and fills in the store-assigned ID. A
	// unique email violation is reported as domain.ErrDuplicateEmail.
	Create(ctx context.Context, u *domain.UserAccount) error
	Update(ctx context.Context, u *domain.UserAccount) error
	// Deactivate flips Active to false, keeping the row.
	Deactivate(ctx context.Context, id int64) error
}
