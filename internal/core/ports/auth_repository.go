package ports

import (
	"context"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// AccessResult is the typed outcome of the store's access-validation
// procedure. Message carries the procedure's @pMsg output; User is only set
// when Matched is true and a row was returned.
type AccessResult struct {
	Matched bool
	Message string
	User    *domain.User
}

// AuthRepository wraps the credential check performed by the store.
type AuthRepository interface {
	ValidateAccess(ctx context.Context, email, password string) (*AccessResult, error)
}
