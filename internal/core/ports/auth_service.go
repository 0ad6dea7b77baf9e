package ports

import (
	"context"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
)

// LoginResult is returned on a successful credential check.
type LoginResult struct {
	Message string
	User    *domain.User
}

// AuthService validates login attempts. No session or token is produced.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
