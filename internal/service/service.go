package service

import (
	"context"
	"errors"
	"fmt"

	"naturexpress-cargo-backend/internal/auth"
	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/store"
)

var (
	ErrForbidden     = errors.New("operation not permitted")
	ErrUnknownStatus = errors.New("unknown request status")
)

// InvalidTransitionError reports a rejected status edge.
type InvalidTransitionError struct {
	From domain.RequestStatus
	To   domain.RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition request from %s to %s", e.From, e.To)
}

// CatalogService manages the priced shipping offerings. Mutations are
// reserved to the service's creator; other callers get ErrForbidden.
type CatalogService interface {
	AddService(ctx context.Context, createdBy string, fields map[string]string) (*domain.Service, error)
	UpdateService(ctx context.Context, callerUID, id string, fields map[string]string) (*domain.Service, error)
	// ToggleActive flips visibility. Every toggle is a persisted write;
	// two toggles are two writes, never one merged write.
	ToggleActive(ctx context.Context, callerUID, id string) (*domain.Service, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListActiveServices(ctx context.Context) ([]domain.Service, error)
	WatchServices(onChange func([]domain.Service), onError func(error)) *store.Subscription
}

// RequestService manages customer service requests and their lifecycle.
type RequestService interface {
	// CreateRequest validates the form, snapshots the service's name and
	// rate, computes the price and persists a pending request. The service
	// record is handed over explicitly by the caller.
	CreateRequest(ctx context.Context, userID string, svc *domain.Service, fields map[string]string) (*domain.ServiceRequest, error)
	GetRequest(ctx context.Context, id string) (*domain.ServiceRequest, error)
	// UpdateStatus performs one atomic status replace, guarded by the
	// lifecycle edges. On a failed write the stored status is untouched.
	UpdateStatus(ctx context.Context, id string, to domain.RequestStatus) (*domain.ServiceRequest, error)
	DeleteRequest(ctx context.Context, id string) error
	ListRequests(ctx context.Context) ([]domain.ServiceRequest, error)
	ListMyRequests(ctx context.Context, userID string) ([]domain.ServiceRequest, error)
	WatchRequests(onChange func([]domain.ServiceRequest), onError func(error)) *store.Subscription
}

// EnquiryService manages one-time contact enquiries.
type EnquiryService interface {
	SubmitEnquiry(ctx context.Context, userID string, fields map[string]string) (*domain.ContactEnquiry, error)
	ListEnquiries(ctx context.Context) ([]domain.ContactEnquiry, error)
	WatchEnquiries(onChange func([]domain.ContactEnquiry), onError func(error)) *store.Subscription
}

// AccountService fronts the identity provider and the user directory.
type AccountService interface {
	// Login validates the form, signs in and resolves the user's role.
	// A missing directory record yields a nil user, not an error.
	Login(ctx context.Context, fields map[string]string) (*auth.Session, *domain.User, error)
	SendPasswordReset(ctx context.Context, fields map[string]string) error
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

// Notifier delivers operational email notices. Failures are logged by the
// caller and never block the triggering write.
type Notifier interface {
	NotifyRequestCreated(ctx context.Context, req *domain.ServiceRequest) error
	NotifyEnquiryReceived(ctx context.Context, enq *domain.ContactEnquiry) error
	NotifyPendingDigest(ctx context.Context, pending []domain.ServiceRequest) error
}
