package domain

// ContactEnquiry is a one-time customer message with shipment particulars.
// Enquiries are write-once: there is no update path anywhere in the system.
type ContactEnquiry struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PhoneNumber      string `json:"phoneNumber"`
	Email            string `json:"email"`
	NumberOfPackages string `json:"numberOfPackages"`
	ItemWeight       string `json:"itemWeight"` // kept as entered, not parsed
	FromLocation     string `json:"fromLocation"`
	ToLocation       string `json:"toLocation"`
	Message          string `json:"message"`
	Timestamp        int64  `json:"timestamp"` // ms since epoch
	UserID           string `json:"userId"`
}
