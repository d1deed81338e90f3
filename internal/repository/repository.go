package repository

import (
	"context"
	"errors"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/store"
)

// ErrNotFound reports that a required record is absent. Callers abort the
// flow that needed it.
var ErrNotFound = errors.New("record not found")

type ServiceRepository interface {
	// Create assigns a fresh ID and persists the service.
	Create(ctx context.Context, svc *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	// Update replaces the whole record at the service's path.
	Update(ctx context.Context, svc *domain.Service) error
	ListAll(ctx context.Context) ([]domain.Service, error)
	// Watch delivers the full newest-first service list on every change.
	// The subscription must be cancelled on teardown.
	Watch(onChange func([]domain.Service), onError func(error)) *store.Subscription
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.ServiceRequest) error
	GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	Update(ctx context.Context, req *domain.ServiceRequest) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.ServiceRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ServiceRequest, error)
	Watch(onChange func([]domain.ServiceRequest), onError func(error)) *store.Subscription
}

type EnquiryRepository interface {
	Create(ctx context.Context, enq *domain.ContactEnquiry) error
	ListAll(ctx context.Context) ([]domain.ContactEnquiry, error)
	Watch(onChange func([]domain.ContactEnquiry), onError func(error)) *store.Subscription
}

type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

// ArchiveRepository mirrors terminal requests into relational storage for
// reporting. Archiving the same request twice is a no-op.
type ArchiveRepository interface {
	ArchiveRequest(ctx context.Context, req *domain.ServiceRequest) error
	CountArchived(ctx context.Context) (int64, error)
}
