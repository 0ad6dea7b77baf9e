package ports

import (
	"context"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// UserInput carries the writable fields of a login account. Password is
// required on create and optional on update; when present it is re-hashed.
type UserInput struct {
	Email    string
	FullName string
	Password string
}

// UserService defines the business operations over login accounts.
type UserService interface {
	Search(ctx context.Context, term string, includeInactive bool) ([]*domain.UserAccount, error)
	Create(ctx context.Context, input UserInput) (*domain.UserAccount, error)
	Update(ctx context.Context, id int64, input UserInput) (*domain.UserAccount, error)
	Deactivate(ctx context.Context, id int64) error
}
