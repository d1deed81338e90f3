package domain

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusInTransit RequestStatus = "in_transit"
	RequestStatusDelivered RequestStatus = "delivered"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// transitions encodes the allowed status edges. Delivered and cancelled
// are terminal.
var transitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:   {RequestStatusConfirmed, RequestStatusCancelled},
	RequestStatusConfirmed: {RequestStatusInTransit, RequestStatusCancelled},
	RequestStatusInTransit: {RequestStatusDelivered, RequestStatusCancelled},
	RequestStatusDelivered: {},
	RequestStatusCancelled: {},
}

// Valid reports whether s is one of the five canonical statuses. Free-text
// values reaching storage through other clients are displayed verbatim but
// are never transitioned through.
func (s RequestStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transition is possible from s.
func (s RequestStatus) Terminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the edge s -> to is allowed.
func (s RequestStatus) CanTransitionTo(to RequestStatus) bool {
	for _, n := range transitions[s] {
		if n == to {
			return true
		}
	}
	return false
}

// ServiceRequest is a customer's submitted instance of using a Service.
// ServiceName and PricePerKg are snapshots captured from the service at
// creation time; all price math uses these, not the live service record.
type ServiceRequest struct {
	ID         string  `json:"requestId"`
	ServiceID  string  `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	PricePerKg float64 `json:"pricePerWeight"`

	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserPhone string `json:"userPhone"`

	Weight     float64       `json:"weight"`
	TotalPrice float64       `json:"totalPrice"`
	Status     RequestStatus `json:"status"`
	CreatedAt  int64         `json:"createdAt"` // ms since epoch

	PickupAddress    string `json:"pickupAddress"`
	DeliveryAddress  string `json:"deliveryAddress"`
	CargoType        string `json:"cargoType"`
	CargoDescription string `json:"cargoDescription"`
	NumberOfPackages string `json:"numberOfPackages"`
	ActualWeightKg   string `json:"actualWeightKg"` // weight as entered, unparsed
	TransportMode    string `json:"transportMode"`
	PickupDate       string `json:"pickupDate"`
	ContactNumber    string `json:"contactNumber"`
}
