package realtimedb

import (
	"context"
	"encoding/json"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/present"
	"naturexpress-cargo-backend/internal/repository"
	"naturexpress-cargo-backend/internal/store"
)

const enquiriesCollection = "enquiries"

type enquiryRepository struct {
	store store.Store
}

func NewEnquiryRepository(s store.Store) repository.EnquiryRepository {
	return &enquiryRepository{store: s}
}

func (r *enquiryRepository) Create(ctx context.Context, enq *domain.ContactEnquiry) error {
	key, err := r.store.GenerateKey(ctx, enquiriesCollection)
	if err != nil {
		return err
	}
	enq.ID = key
	return r.store.Set(ctx, enquiriesCollection+"/"+key, enq)
}

func (r *enquiryRepository) ListAll(ctx context.Context) ([]domain.ContactEnquiry, error) {
	var keyed map[string]domain.ContactEnquiry
	if err := r.store.Get(ctx, enquiriesCollection, &keyed); err != nil {
		return nil, err
	}
	return sortedEnquiries(keyed), nil
}

func (r *enquiryRepository) Watch(onChange func([]domain.ContactEnquiry), onError func(error)) *store.Subscription {
	return r.store.Subscribe(enquiriesCollection, func(raw json.RawMessage) {
		var keyed map[string]domain.ContactEnquiry
		if err := json.Unmarshal(raw, &keyed); err != nil {
			onError(err)
			return
		}
		onChange(sortedEnquiries(keyed))
	}, onError)
}

func sortedEnquiries(keyed map[string]domain.ContactEnquiry) []domain.ContactEnquiry {
	enquiries := make([]domain.ContactEnquiry, 0, len(keyed))
	for _, enq := range keyed {
		enquiries = append(enquiries, enq)
	}
	present.SortEnquiriesNewestFirst(enquiries)
	return enquiries
}
