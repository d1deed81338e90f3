// Package present prepares records for display: newest-first ordering,
// currency and date formatting, and placeholders for absent optional fields.
package present

import (
	"fmt"
	"sort"
	"time"

	"naturexpress-cargo-backend/internal/domain"
)

const (
	// Dash substitutes empty optional text fields.
	Dash = "-"
	// MessageFallback substitutes an absent enquiry message.
	MessageFallback = "No message provided"

	dateLayout = "Jan 02, 2006 15:04"
)

// SortRequestsNewestFirst orders requests by CreatedAt descending, in place.
// Ordering among equal timestamps is unspecified.
func SortRequestsNewestFirst(requests []domain.ServiceRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt > requests[j].CreatedAt
	})
}

// SortEnquiriesNewestFirst orders enquiries by Timestamp descending, in place.
func SortEnquiriesNewestFirst(enquiries []domain.ContactEnquiry) {
	sort.Slice(enquiries, func(i, j int) bool {
		return enquiries[i].Timestamp > enquiries[j].Timestamp
	})
}

// SortServicesNewestFirst orders services by CreatedAt descending, in place.
func SortServicesNewestFirst(services []domain.Service) {
	sort.Slice(services, func(i, j int) bool {
		return services[i].CreatedAt > services[j].CreatedAt
	})
}

// TextOrDash renders s, or the dash placeholder when s is empty.
func TextOrDash(s string) string {
	if s == "" {
		return Dash
	}
	return s
}

// WeightOrDash renders a textual weight with its unit, or the placeholder.
func WeightOrDash(s string) string {
	if s == "" {
		return Dash
	}
	return s + " kg"
}

// MessageOrFallback renders a free-text message, or the longer fallback
// sentence when absent.
func MessageOrFallback(s string) string {
	if s == "" {
		return MessageFallback
	}
	return s
}

// FormatINR renders an amount rounded to two decimals, e.g. "₹1250.00".
func FormatINR(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// FormatRate renders a per-kg rate, e.g. "₹12.5/kg".
func FormatRate(pricePerKg float64) string {
	return fmt.Sprintf("₹%g/kg", pricePerKg)
}

// FormatTimestamp renders a ms-epoch timestamp as "Jan 02, 2006 15:04".
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Format(dateLayout)
}

// StatusLabel renders the display label for a request status. Unknown values
// stored by other clients are rendered verbatim.
func StatusLabel(status domain.RequestStatus) string {
	switch status {
	case domain.RequestStatusPending:
		return "Pending"
	case domain.RequestStatusConfirmed:
		return "Confirmed"
	case domain.RequestStatusInTransit:
		return "In Transit"
	case domain.RequestStatusDelivered:
		return "Delivered"
	case domain.RequestStatusCancelled:
		return "Cancelled"
	default:
		return string(status)
	}
}
