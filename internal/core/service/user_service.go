package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinicadelvalle/clinic-api/internal/core/domain"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
)

const (
	msgEmailRequired    = "El correo es obligatorio."
	msgPasswordRequired = "La contraseña es obligatoria."
	msgDuplicateEmail   = "Ya existe un usuario con ese correo."
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Search(ctx context.Context, term string, includeInactive bool) ([]*domain.UserAccount, error) {
	return s.repo.Search(ctx, strings.TrimSpace(term), includeInactive)
}

func (s *UserService) Create(ctx context.Context, input ports.UserInput) (*domain.UserAccount, error) {
	if !requiredText(input.Email) {
		return nil, domain.Validation(msgEmailRequired)
	}
	if !requiredText(input.FullName) {
		return nil, domain.Validation(msgFullNameRequired)
	}
	if !requiredText(input.Password) {
		return nil, domain.Validation(msgPasswordRequired)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.UserAccount{
		Email:        strings.TrimSpace(input.Email),
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: string(hash),
		Active:       true,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if err == domain.ErrDuplicateEmail {
			return nil, domain.Validation(msgDuplicateEmail)
		}
		s.logger.Error().Err(err).Str("email", account.Email).Msg("failed to create user account")
		return nil, err
	}

	s.logger.Info().Int64("user_id", account.ID).Msg("user account created")
	return account, nil
}

// Update rewrites the account's profile fields. A blank password keeps the
// current hash.
func (s *UserService) Update(ctx context.Context, id int64, input ports.UserInput) (*domain.UserAccount, error) {
	if !requiredText(input.Email) {
		return nil, domain.Validation(msgEmailRequired)
	}
	if !requiredText(input.FullName) {
		return nil, domain.Validation(msgFullNameRequired)
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account.Email = strings.TrimSpace(input.Email)
	account.FullName = strings.TrimSpace(input.FullName)

	if requiredText(input.Password) {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, account); err != nil {
		if err == domain.ErrDuplicateEmail {
			return nil, domain.Validation(msgDuplicateEmail)
		}
		return nil, err
	}
	return account, nil
}

func (s *UserService) Deactivate(ctx context.Context, id int64) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user account deactivated")
	return nil
}
