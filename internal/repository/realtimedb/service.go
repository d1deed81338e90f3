// Package realtimedb implements the repositories over the realtime document
// store. Records live under flat collections keyed by generated IDs, the way
// the mobile clients wrote them.
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

const servicesCollection = "services"

type serviceRepository struct {
	store store.Store
}

func NewServiceRepository(s store.Store) repository.ServiceRepository {
	return &serviceRepository{store: s}
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.Service) error {
	key, err := r.store.GenerateKey(ctx, servicesCollection)
	if err != nil {
		return err
	}
	svc.ID = key
	return r.store.Set(ctx, servicesCollection+"/"+key, svc)
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	var svc domain.Service
	if err := r.store.Get(ctx, servicesCollection+"/"+id, &svc); err != nil {
		return nil, err
	}
	if svc.ID == "" {
		return nil, repository.ErrNotFound
	}
	return &svc, nil
}

func (r *serviceRepository) Update(ctx context.Context, svc *domain.Service) error {
	if svc.ID == "" {
		return fmt.Errorf("service has no id")
	}
	return r.store.Set(ctx, servicesCollection+"/"+svc.ID, svc)
}

func (r *serviceRepository) ListAll(ctx context.Context) ([]domain.Service, error) {
	var keyed map[string]domain.Service
	if err := r.store.Get(ctx, servicesCollection, &keyed); err != nil {
		return nil, err
	}
	services := make([]domain.Service, 0, len(keyed))
	for _, svc := range keyed {
		services = append(services, svc)
	}
	present.SortServicesNewestFirst(services)
	return services, nil
}

func (r *serviceRepository) Watch(onChange func([]domain.Service), onError func(error)) *store.Subscription {
	return r.store.Subscribe(servicesCollection, func(raw json.RawMessage) {
		var keyed map[string]domain.Service
		if err := json.Unmarshal(raw, &keyed); err != nil {
			onError(err)
			return
		}
		services := make([]domain.Service, 0, len(keyed))
		for _, svc := range keyed {
			services = append(services, svc)
		}
		present.SortServicesNewestFirst(services)
		onChange(services)
	}, onError)
}
