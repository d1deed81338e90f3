package realtimedb

import (
	"context"
	"encoding/json"
	"fmt"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/present"
	"naturexpress-cargo-backend/internal/repository"
	"naturexpress-cargo-backend/internal/store"
)

const requestsCollection = "requests"

type requestRepository struct {
	store store.Store
}

func NewRequestRepository(s store.Store) repository.RequestRepository {
	return &requestRepository{store: s}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.ServiceRequest) error {
	key, err := r.store.GenerateKey(ctx, requestsCollection)
	if err != nil {
		return err
	}
	req.ID = key
	return r.store.Set(ctx, requestsCollection+"/"+key, req)
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	var req domain.ServiceRequest
	if err := r.store.Get(ctx, requestsCollection+"/"+id, &req); err != nil {
		return nil, err
	}
	if req.ID == "" {
		return nil, repository.ErrNotFound
	}
	return &req, nil
}

func (r *requestRepository) Update(ctx context.Context, req *domain.ServiceRequest) error {
	if req.ID == "" {
		return fmt.Errorf("request has no id")
	}
	return r.store.Set(ctx, requestsCollection+"/"+req.ID, req)
}

func (r *requestRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, requestsCollection+"/"+id)
}

func (r *requestRepository) ListAll(ctx context.Context) ([]domain.ServiceRequest, error) {
	var keyed map[string]domain.ServiceRequest
	if err := r.store.Get(ctx, requestsCollection, &keyed); err != nil {
		return nil, err
	}
	return sortedRequests(keyed), nil
}

func (r *requestRepository) ListByUser(ctx context.Context, userID string) ([]domain.ServiceRequest, error) {
	var keyed map[string]domain.ServiceRequest
	if err := r.store.QueryByField(ctx, requestsCollection, "userId", userID, &keyed); err != nil {
		return nil, err
	}
	return sortedRequests(keyed), nil
}

func (r *requestRepository) Watch(onChange func([]domain.ServiceRequest), onError func(error)) *store.Subscription {
	return r.store.Subscribe(requestsCollection, func(raw json.RawMessage) {
		var keyed map[string]domain.ServiceRequest
		if err := json.Unmarshal(raw, &keyed); err != nil {
			onError(err)
			return
		}
		onChange(sortedRequests(keyed))
	}, onError)
}

func sortedRequests(keyed map[string]domain.ServiceRequest) []domain.ServiceRequest {
	requests := make([]domain.ServiceRequest, 0, len(keyed))
	for _, req := range keyed {
		requests = append(requests, req)
	}
	present.SortRequestsNewestFirst(requests)
	return requests
}
