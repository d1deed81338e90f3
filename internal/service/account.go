package service

import (
	"context"
	"errors"

	"naturexpress-cargo-backend/internal/auth"
	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/forms"
	"naturexpress-cargo-backend/internal/logger"
	"naturexpress-cargo-backend/internal/repository"
)

type accountService struct {
	auth  auth.Client
	users repository.UserRepository
}

func NewAccountService(authClient auth.Client, users repository.UserRepository) AccountService {
	return &accountService{auth: authClient, users: users}
}

func (s *accountService) Login(ctx context.Context, fields map[string]string) (*auth.Session, *domain.User, error) {
	form, ferr := forms.ValidateLoginForm(fields)
	if ferr != nil {
		return nil, nil, ferr
	}

	session, err := s.auth.SignIn(ctx, form.Email, form.Password)
	if err != nil {
		return nil, nil, err
	}

	// Sign-in succeeded even when no directory record exists yet. The
	// caller decides what a nil user means for its surface.
	user, err := s.users.GetByID(ctx, session.UID)
	if errors.Is(err, repository.ErrNotFound) {
		return session, nil, nil
	}
	if err != nil {
		logger.Warn("role lookup failed", "uid", session.UID, "error", err)
		return session, nil, nil
	}
	return session, user, nil
}

func (s *accountService) SendPasswordReset(ctx context.Context, fields map[string]string) error {
	email, ferr := forms.ValidateResetForm(fields)
	if ferr != nil {
		return ferr
	}
	return s.auth.SendPasswordReset(ctx, email)
}

func (s *accountService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
