package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

const (
	msgLoginRequired = "El correo y la contraseña son obligatorios."
	msgAccessDenied  = "Credenciales inválidas."
	msgWelcome       = "Acceso concedido."
)

// AuthService validates login attempts against the store's access-validation
// procedure. It keeps no session state.
type AuthService struct {
	repo   ports.AuthRepository
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Login checks the credentials. Blank fields fail before any store call. An
// unmatched login surfaces the procedure's message (or a default) as an
// AccessDeniedError.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if !requiredText(email) || !requiredText(password) {
		return nil, domain.Validation(msgLoginRequired)
	}

	result, err := s.repo.ValidateAccess(ctx, strings.TrimSpace(email), password)
	if err != nil {
		s.logger.Error().Err(err).Msg("access validation failed")
		return nil, err
	}

	if !result.Matched || result.User == nil {
		message := result.Message
		if message == "" {
			message = msgAccessDenied
		}
		s.logger.Info().Str("email", strings.TrimSpace(email)).Msg("login denied")
		return nil, &domain.AccessDeniedError{Message: message}
	}

	message := result.Message
	if message == "" {
		message = msgWelcome
	}

	s.logger.Info().Int64("user_id", result.User.ID).Msg("login accepted")
	return &ports.LoginResult{Message: message, User: result.User}, nil
}
