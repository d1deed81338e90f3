package realtimedb

import (
	"context"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/repository"
	"naturexpress-cargo-backend/internal/store"
)

const usersCollection = "users"

type userRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) repository.UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	if err := r.store.Get(ctx, usersCollection+"/"+userID, &user); err != nil {
		return nil, err
	}
	if user.ID == "" && user.Email == "" {
		return nil, repository.ErrNotFound
	}
	if user.ID == "" {
		user.ID = userID
	}
	return &user, nil
}
