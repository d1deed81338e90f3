package service

import (
	"context"
	"time"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/events"
	"naturexpress-cargo-backend/internal/forms"
	"naturexpress-cargo-backend/internal/logger"
	"naturexpress-cargo-backend/internal/pricing"
	"naturexpress-cargo-backend/internal/repository"
	"naturexpress-cargo-backend/internal/store"
)

type requestService struct {
	requests  repository.RequestRepository
	users     repository.UserRepository
	notifier  Notifier
	publisher events.Publisher
}

func NewRequestService(requests repository.RequestRepository, users repository.UserRepository, notifier Notifier, publisher events.Publisher) RequestService {
	return &requestService{
		requests:  requests,
		users:     users,
		notifier:  notifier,
		publisher: publisher,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, userID string, svc *domain.Service, fields map[string]string) (*domain.ServiceRequest, error) {
	form, ferr := forms.ValidateRequestForm(fields)
	if ferr != nil {
		return nil, ferr
	}

	quote := pricing.Calculate(svc.PricePerKg, form.WeightText)

	req := &domain.ServiceRequest{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		PricePerKg:  svc.PricePerKg,

		UserID: userID,

		Weight:     quote.Weight,
		TotalPrice: quote.Total,
		Status:     domain.RequestStatusPending,
		CreatedAt:  time.Now().UnixMilli(),

		PickupAddress:    form.PickupAddress,
		DeliveryAddress:  form.DeliveryAddress,
		CargoType:        form.CargoType,
		CargoDescription: form.CargoDescription,
		NumberOfPackages: form.NumberOfPackages,
		ActualWeightKg:   form.WeightText,
		TransportMode:    form.TransportMode,
		PickupDate:       form.PickupDate,
		ContactNumber:    form.ContactNumber,
	}
	s.prefillContact(ctx, req)

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyRequestCreated(ctx, req); err != nil {
			logger.Warn("request notification failed", "request_id", req.ID, "error", err)
		}
	}
	s.publish(ctx, events.RequestEvent{
		Type:       events.TypeRequestCreated,
		RequestID:  req.ID,
		ServiceID:  req.ServiceID,
		UserID:     req.UserID,
		ToStatus:   req.Status,
		OccurredAt: req.CreatedAt,
	})

	return req, nil
}

// prefillContact fills the requester's name, email and phone from the user
// directory. A missing or unreadable record falls back to a placeholder name;
// the request is created either way.
func (s *requestService) prefillContact(ctx context.Context, req *domain.ServiceRequest) {
	req.UserName = "Unknown"
	if s.users == nil || req.UserID == "" {
		return
	}
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		logger.Warn("user prefill failed", "user_id", req.UserID, "error", err)
		return
	}
	if user.Name != "" {
		req.UserName = user.Name
	}
	req.UserEmail = user.Email
	req.UserPhone = user.Phone
}

func (s *requestService) GetRequest(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	return s.requests.GetByID(ctx, id)
}

func (s *requestService) UpdateStatus(ctx context.Context, id string, to domain.RequestStatus) (*domain.ServiceRequest, error) {
	if !to.Valid() {
		return nil, ErrUnknownStatus
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !req.Status.Valid() || !req.Status.CanTransitionTo(to) {
		return nil, &InvalidTransitionError{From: req.Status, To: to}
	}

	from := req.Status
	updated := *req
	updated.Status = to
	if err := s.requests.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.publish(ctx, events.RequestEvent{
		Type:       events.TypeRequestStatusChanged,
		RequestID:  updated.ID,
		ServiceID:  updated.ServiceID,
		UserID:     updated.UserID,
		FromStatus: from,
		ToStatus:   to,
		OccurredAt: time.Now().UnixMilli(),
	})
	return &updated, nil
}

func (s *requestService) DeleteRequest(ctx context.Context, id string) error {
	if _, err := s.requests.GetByID(ctx, id); err != nil {
		return err
	}
	return s.requests.Delete(ctx, id)
}

func (s *requestService) ListRequests(ctx context.Context) ([]domain.ServiceRequest, error) {
	return s.requests.ListAll(ctx)
}

func (s *requestService) ListMyRequests(ctx context.Context, userID string) ([]domain.ServiceRequest, error) {
	return s.requests.ListByUser(ctx, userID)
}

func (s *requestService) WatchRequests(onChange func([]domain.ServiceRequest), onError func(error)) *store.Subscription {
	return s.requests.Watch(onChange, onError)
}

func (s *requestService) publish(ctx context.Context, event events.RequestEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event.RequestID, event); err != nil {
		logger.Warn("event publish failed", "type", event.Type, "request_id", event.RequestID, "error", err)
	}
}
