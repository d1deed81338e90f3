package service

import (
	"context"
	"time"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/forms"
	"naturexpress-cargo-backend/internal/repository"
	"naturexpress-cargo-backend/internal/store"
)

type catalogService struct {
	services repository.ServiceRepository
}

func NewCatalogService(services repository.ServiceRepository) CatalogService {
	return &catalogService{services: services}
}

func (s *catalogService) AddService(ctx context.Context, createdBy string, fields map[string]string) (*domain.Service, error) {
	form, ferr := forms.ValidateServiceForm(fields)
	if ferr != nil {
		return nil, ferr
	}

	svc := &domain.Service{
		Name:        form.Name,
		PricePerKg:  form.PricePerKg,
		Description: form.Description,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UnixMilli(),
		Active:      true,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateService edits name, rate and description. ID, creator, creation time
// and the active flag are untouched; existing requests keep their snapshots.
func (s *catalogService) UpdateService(ctx context.Context, callerUID, id string, fields map[string]string) (*domain.Service, error) {
	form, ferr := forms.ValidateServiceForm(fields)
	if ferr != nil {
		return nil, ferr
	}

	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := creatorCheck(svc, callerUID); err != nil {
		return nil, err
	}

	svc.Name = form.Name
	svc.PricePerKg = form.PricePerKg
	svc.Description = form.Description
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalogService) ToggleActive(ctx context.Context, callerUID, id string) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := creatorCheck(svc, callerUID); err != nil {
		return nil, err
	}

	svc.Active = !svc.Active
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// creatorCheck enforces that only the creating admin mutates a service.
// Records written before creator tracking carry no creator and stay open.
func creatorCheck(svc *domain.Service, callerUID string) error {
	if svc.CreatedBy != "" && svc.CreatedBy != callerUID {
		return ErrForbidden
	}
	return nil
}

func (s *catalogService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	return s.services.GetByID(ctx, id)
}

func (s *catalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.ListAll(ctx)
}

func (s *catalogService) ListActiveServices(ctx context.Context) ([]domain.Service, error) {
	all, err := s.services.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Service, 0, len(all))
	for _, svc := range all {
		if svc.Active {
			active = append(active, svc)
		}
	}
	return active, nil
}

func (s *catalogService) WatchServices(onChange func([]domain.Service), onError func(error)) *store.Subscription {
	return s.services.Watch(onChange, onError)
}
