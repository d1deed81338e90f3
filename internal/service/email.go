package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/present"
)

// mailSender is the sendgrid client surface, injectable for tests.
type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// EmailNotifier sends operational notices to the admin inbox via SendGrid.
type EmailNotifier struct {
	client     mailSender
	fromEmail  string
	fromName   string
	adminEmail string
}

var _ Notifier = (*EmailNotifier)(nil)

func NewEmailNotifier(apiKey, fromEmail, fromName, adminEmail string) *EmailNotifier {
	return &EmailNotifier{
		client:     sendgrid.NewSendClient(apiKey),
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
	}
}

// NewEmailNotifierWithSender allows injecting a test sender.
func NewEmailNotifierWithSender(sender mailSender, fromEmail, fromName, adminEmail string) *EmailNotifier {
	return &EmailNotifier{
		client:     sender,
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
	}
}

func (n *EmailNotifier) NotifyRequestCreated(ctx context.Context, req *domain.ServiceRequest) error {
	subject := fmt.Sprintf("New service request: %s", req.ServiceName)
	plain := fmt.Sprintf(
		"%s requested %s.\nWeight: %s\nTotal: %s\nPickup: %s\nDelivery: %s",
		req.UserName, req.ServiceName,
		present.WeightOrDash(req.ActualWeightKg),
		present.FormatINR(req.TotalPrice),
		req.PickupAddress, req.DeliveryAddress,
	)
	return n.send(ctx, subject, plain)
}

func (n *EmailNotifier) NotifyEnquiryReceived(ctx context.Context, enq *domain.ContactEnquiry) error {
	subject := fmt.Sprintf("New enquiry from %s", enq.Name)
	plain := fmt.Sprintf(
		"From: %s (%s, %s)\nRoute: %s to %s\nPackages: %s, weight %s\n\n%s",
		enq.Name, enq.Email, enq.PhoneNumber,
		enq.FromLocation, enq.ToLocation,
		enq.NumberOfPackages, present.WeightOrDash(enq.ItemWeight),
		present.MessageOrFallback(enq.Message),
	)
	return n.send(ctx, subject, plain)
}

func (n *EmailNotifier) NotifyPendingDigest(ctx context.Context, pending []domain.ServiceRequest) error {
	subject := fmt.Sprintf("%d requests awaiting confirmation", len(pending))
	var b strings.Builder
	for _, req := range pending {
		fmt.Fprintf(&b, "%s: %s for %s, %s, created %s\n",
			req.ID, req.ServiceName, req.UserName,
			present.FormatINR(req.TotalPrice),
			present.FormatTimestamp(req.CreatedAt),
		)
	}
	return n.send(ctx, subject, b.String())
}

func (n *EmailNotifier) send(ctx context.Context, subject, plainText string) error {
	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail("", n.adminEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, "")

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
