package service

import (
	"context"
	"time"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/forms"
	"naturexpress-cargo-backend/internal/logger"
	"naturexpress-cargo-backend/internal/repository"
	"naturexpress-cargo-backend/internal/store"
)

type enquiryService struct {
	enquiries repository.EnquiryRepository
	users     repository.UserRepository
	notifier  Notifier
}

func NewEnquiryService(enquiries repository.EnquiryRepository, users repository.UserRepository, notifier Notifier) EnquiryService {
	return &enquiryService{enquiries: enquiries, users: users, notifier: notifier}
}

func (s *enquiryService) SubmitEnquiry(ctx context.Context, userID string, fields map[string]string) (*domain.ContactEnquiry, error) {
	s.prefillContact(ctx, userID, fields)

	form, ferr := forms.ValidateEnquiryForm(fields)
	if ferr != nil {
		return nil, ferr
	}

	enq := &domain.ContactEnquiry{
		Name:             form.Name,
		PhoneNumber:      form.Phone,
		Email:            form.Email,
		NumberOfPackages: form.Packages,
		ItemWeight:       form.Weight,
		FromLocation:     form.From,
		ToLocation:       form.To,
		Message:          form.Message,
		Timestamp:        time.Now().UnixMilli(),
		UserID:           userID,
	}
	if err := s.enquiries.Create(ctx, enq); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyEnquiryReceived(ctx, enq); err != nil {
			logger.Warn("enquiry notification failed", "enquiry_id", enq.ID, "error", err)
		}
	}
	return enq, nil
}

// prefillContact fills blank contact fields from the signed-in submitter's
// directory record, before validation so the filled values count. Read
// failures are swallowed; the submitter's own entries always win.
func (s *enquiryService) prefillContact(ctx context.Context, userID string, fields map[string]string) {
	if s.users == nil || userID == "" {
		return
	}
	if fields["name"] != "" && fields["phone"] != "" && fields["email"] != "" {
		return
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("enquiry prefill failed", "user_id", userID, "error", err)
		return
	}
	if fields["name"] == "" {
		fields["name"] = user.Name
	}
	if fields["phone"] == "" {
		fields["phone"] = user.Phone
	}
	if fields["email"] == "" {
		fields["email"] = user.Email
	}
}

func (s *enquiryService) ListEnquiries(ctx context.Context) ([]domain.ContactEnquiry, error) {
	return s.enquiries.ListAll(ctx)
}

func (s *enquiryService) WatchEnquiries(onChange func([]domain.ContactEnquiry), onError func(error)) *store.Subscription {
	return s.enquiries.Watch(onChange, onError)
}
