// Package forms validates raw form input before any record is constructed.
//
// Each validator takes a mapping of field name to raw text and returns either
// a normalized value set or the first violated rule. Rules run in a fixed
// field order and stop at the first failure, matching the focus-the-first-bad-
// field behavior of the admin screens. All values are trimmed before checking.
package forms

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError identifies the offending field and carries the message shown to
// the user. It is a returned outcome, not a thrown failure.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func get(fields map[string]string, key string) string {
	return strings.TrimSpace(fields[key])
}

// parsePositive reports whether s parses to a finite number > 0.
func parsePositive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

func validEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// ServiceForm holds the normalized values of a validated service form.
type ServiceForm struct {
	Name        string
	PricePerKg  float64
	Description string
}

// ValidateServiceForm checks name, price and description in that order.
// Expected keys: name, price, description.
func ValidateServiceForm(fields map[string]string) (*ServiceForm, *FieldError) {
	name := get(fields, "name")
	if name == "" {
		return nil, &FieldError{Field: "name", Message: "Service name is required"}
	}

	priceText := get(fields, "price")
	if priceText == "" {
		return nil, &FieldError{Field: "price", Message: "Price per weight is required"}
	}
	price, ok := parsePositive(priceText)
	if !ok {
		return nil, &FieldError{Field: "price", Message: "Please enter a valid price"}
	}

	description := get(fields, "description")
	if description == "" {
		return nil, &FieldError{Field: "description", Message: "Description is required"}
	}

	return &ServiceForm{Name: name, PricePerKg: price, Description: description}, nil
}

// RequestForm holds the normalized values of a validated service-request form.
// WeightText keeps the raw entry; Weight is the parsed value.
type RequestForm struct {
	PickupAddress    string
	DeliveryAddress  string
	CargoType        string
	CargoDescription string
	NumberOfPackages string
	WeightText       string
	Weight           float64
	TransportMode    string
	PickupDate       string
	ContactNumber    string
}

// ValidateRequestForm checks the cargo fields in screen order, then the
// weight parse, then the remaining shipment fields. Expected keys:
// pickupAddress, deliveryAddress, cargoType, cargoDescription,
// numberOfPackages, weight, transportMode, pickupDate, contactNumber.
func ValidateRequestForm(fields map[string]string) (*RequestForm, *FieldError) {
	required := []struct {
		key     string
		message string
	}{
		{"pickupAddress", "Pickup address is required"},
		{"deliveryAddress", "Delivery address is required"},
		{"cargoType", "Cargo type is required"},
		{"cargoDescription", "Cargo description is required"},
		{"numberOfPackages", "Number of packages is required"},
		{"weight", "Actual weight is required"},
	}
	for _, r := range required {
		if get(fields, r.key) == "" {
			return nil, &FieldError{Field: r.key, Message: r.message}
		}
	}

	weightText := get(fields, "weight")
	weight, ok := parsePositive(weightText)
	if !ok {
		return nil, &FieldError{Field: "weight", Message: "Please enter a valid weight"}
	}

	tail := []struct {
		key     string
		message string
	}{
		{"transportMode", "Transport mode is required"},
		{"pickupDate", "Pickup date is required"},
		{"contactNumber", "Contact number is required"},
	}
	for _, r := range tail {
		if get(fields, r.key) == "" {
			return nil, &FieldError{Field: r.key, Message: r.message}
		}
	}

	return &RequestForm{
		PickupAddress:    get(fields, "pickupAddress"),
		DeliveryAddress:  get(fields, "deliveryAddress"),
		CargoType:        get(fields, "cargoType"),
		CargoDescription: get(fields, "cargoDescription"),
		NumberOfPackages: get(fields, "numberOfPackages"),
		WeightText:       weightText,
		Weight:           weight,
		TransportMode:    get(fields, "transportMode"),
		PickupDate:       get(fields, "pickupDate"),
		ContactNumber:    get(fields, "contactNumber"),
	}, nil
}

// EnquiryForm holds the normalized values of a validated contact enquiry.
// Weight stays textual: enquiries record it as entered.
type EnquiryForm struct {
	Name     string
	Phone    string
	Email    string
	Packages string
	Weight   string
	From     string
	To       string
	Message  string
}

// ValidateEnquiryForm checks contact fields, the email shape, then shipment
// fields. Message is optional. Expected keys: name, phone, email, packages,
// weight, from, to, message.
func ValidateEnquiryForm(fields map[string]string) (*EnquiryForm, *FieldError) {
	name := get(fields, "name")
	if name == "" {
		return nil, &FieldError{Field: "name", Message: "Name is required"}
	}

	phone := get(fields, "phone")
	if phone == "" {
		return nil, &FieldError{Field: "phone", Message: "Phone number is required"}
	}

	email := get(fields, "email")
	if email == "" {
		return nil, &FieldError{Field: "email", Message: "Email is required"}
	}
	if !validEmail(email) {
		return nil, &FieldError{Field: "email", Message: "Invalid email address"}
	}

	required := []struct {
		key     string
		message string
	}{
		{"packages", "Number of packages is required"},
		{"weight", "Item weight is required"},
		{"from", "From location is required"},
		{"to", "To location is required"},
	}
	for _, r := range required {
		if get(fields, r.key) == "" {
			return nil, &FieldError{Field: r.key, Message: r.message}
		}
	}

	return &EnquiryForm{
		Name:     name,
		Phone:    phone,
		Email:    email,
		Packages: get(fields, "packages"),
		Weight:   get(fields, "weight"),
		From:     get(fields, "from"),
		To:       get(fields, "to"),
		Message:  get(fields, "message"),
	}, nil
}

// CredentialsForm holds a validated email/password pair.
type CredentialsForm struct {
	Email    string
	Password string
}

// ValidateLoginForm checks email presence, email shape, then password.
func ValidateLoginForm(fields map[string]string) (*CredentialsForm, *FieldError) {
	email := get(fields, "email")
	if email == "" {
		return nil, &FieldError{Field: "email", Message: "Email is required"}
	}
	if !validEmail(email) {
		return nil, &FieldError{Field: "email", Message: "Please enter a valid email"}
	}

	password := get(fields, "password")
	if password == "" {
		return nil, &FieldError{Field: "password", Message: "Password is required"}
	}

	return &CredentialsForm{Email: email, Password: password}, nil
}

// ValidateResetForm checks the password-reset email field.
func ValidateResetForm(fields map[string]string) (string, *FieldError) {
	email := get(fields, "email")
	if email == "" {
		return "", &FieldError{Field: "email", Message: "Email is required"}
	}
	if !validEmail(email) {
		return "", &FieldError{Field: "email", Message: "Please enter a valid email"}
	}
	return email, nil
}
