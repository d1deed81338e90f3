package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceFields() map[string]string {
	return map[string]string{
		"name":        "Express Freight",
		"price":       "12.50",
		"description": "Door to door delivery",
	}
}

func TestValidateServiceForm(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		form, ferr := ValidateServiceForm(serviceFields())
		require.Nil(t, ferr)
		assert.Equal(t, "Express Freight", form.Name)
		assert.Equal(t, 12.5, form.PricePerKg)
		assert.Equal(t, "Door to door delivery", form.Description)
	})

	t.Run("All empty reports name first", func(t *testing.T) {
		_, ferr := ValidateServiceForm(map[string]string{})
		require.NotNil(t, ferr)
		assert.Equal(t, "name", ferr.Field)
	})

	t.Run("Negative price rejected as invalid", func(t *testing.T) {
		f := serviceFields()
		f["price"] = "-5"
		_, ferr := ValidateServiceForm(f)
		require.NotNil(t, ferr)
		assert.Equal(t, "price", ferr.Field)
		assert.Equal(t, "Please enter a valid price", ferr.Message)
	})

	t.Run("Zero price rejected", func(t *testing.T) {
		f := serviceFields()
		f["price"] = "0"
		_, ferr := ValidateServiceForm(f)
		require.NotNil(t, ferr)
		assert.Equal(t, "price", ferr.Field)
	})

	t.Run("Whitespace-only description rejected", func(t *testing.T) {
		f := serviceFields()
		f["description"] = "   "
		_, ferr := ValidateServiceForm(f)
		require.NotNil(t, ferr)
		assert.Equal(t, "description", ferr.Field)
	})

	t.Run("Values trimmed", func(t *testing.T) {
		f := serviceFields()
		f["name"] = "  Express Freight  "
		form, ferr := ValidateServiceForm(f)
		require.Nil(t, ferr)
		assert.Equal(t, "Express Freight", form.Name)
	})
}

func requestFields() map[string]string {
	return map[string]string{
		"pickupAddress":    "12 Dock Rd",
		"deliveryAddress":  "99 Hill St",
		"cargoType":        "Electronics",
		"cargoDescription": "Boxed routers",
		"numberOfPackages": "4",
		"weight":           "120.5",
		"transportMode":    "Road",
		"pickupDate":       "12/09/2026",
		"contactNumber":    "9876543210",
	}
}

func TestValidateRequestForm(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		form, ferr := ValidateRequestForm(requestFields())
		require.Nil(t, ferr)
		assert.Equal(t, 120.5, form.Weight)
		assert.Equal(t, "120.5", form.WeightText)
		assert.Equal(t, "Road", form.TransportMode)
	})

	t.Run("Field order", func(t *testing.T) {
		order := []string{
			"pickupAddress", "deliveryAddress", "cargoType", "cargoDescription",
			"numberOfPackages", "weight", "transportMode", "pickupDate", "contactNumber",
		}
		fields := map[string]string{}
		for _, key := range order {
			_, ferr := ValidateRequestForm(fields)
			require.NotNil(t, ferr)
			assert.Equal(t, key, ferr.Field)
			fields[key] = requestFields()[key]
		}
		_, ferr := ValidateRequestForm(fields)
		assert.Nil(t, ferr)
	})

	t.Run("Non-positive weight rejected after presence check", func(t *testing.T) {
		f := requestFields()
		f["weight"] = "-2"
		_, ferr := ValidateRequestForm(f)
		require.NotNil(t, ferr)
		assert.Equal(t, "weight", ferr.Field)
		assert.Equal(t, "Please enter a valid weight", ferr.Message)
	})
}

func enquiryFields() map[string]string {
	return map[string]string{
		"name":     "Asha Rao",
		"phone":    "9876543210",
		"email":    "asha@example.com",
		"packages": "2",
		"weight":   "35",
		"from":     "Kochi",
		"to":       "Pune",
		"message":  "Fragile goods",
	}
}

func TestValidateEnquiryForm(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		form, ferr := ValidateEnquiryForm(enquiryFields())
		require.Nil(t, ferr)
		assert.Equal(t, "asha@example.com", form.Email)
		assert.Equal(t, "35", form.Weight)
	})

	t.Run("Bad email rejected at the email check", func(t *testing.T) {
		f := enquiryFields()
		f["email"] = "not-an-email"
		// Later fields empty must not matter: email is checked before them.
		f["packages"] = ""
		_, ferr := ValidateEnquiryForm(f)
		require.NotNil(t, ferr)
		assert.Equal(t, "email", ferr.Field)
		assert.Equal(t, "Invalid email address", ferr.Message)
	})

	t.Run("Empty email reported before shape check", func(t *testing.T) {
		f := enquiryFields()
		f["email"] = ""
		_, ferr := ValidateEnquiryForm(f)
		require.NotNil(t, ferr)
		assert.Equal(t, "Email is required", ferr.Message)
	})

	t.Run("Name checked before phone", func(t *testing.T) {
		f := enquiryFields()
		f["name"] = ""
		f["phone"] = ""
		_, ferr := ValidateEnquiryForm(f)
		require.NotNil(t, ferr)
		assert.Equal(t, "name", ferr.Field)
	})

	t.Run("Message optional", func(t *testing.T) {
		f := enquiryFields()
		delete(f, "message")
		form, ferr := ValidateEnquiryForm(f)
		require.Nil(t, ferr)
		assert.Equal(t, "", form.Message)
	})
}

func TestValidateLoginForm(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		form, ferr := ValidateLoginForm(map[string]string{
			"email":    "admin@naturexpress.in",
			"password": "secret",
		})
		require.Nil(t, ferr)
		assert.Equal(t, "admin@naturexpress.in", form.Email)
	})

	t.Run("Email shape before password", func(t *testing.T) {
		_, ferr := ValidateLoginForm(map[string]string{"email": "nope"})
		require.NotNil(t, ferr)
		assert.Equal(t, "email", ferr.Field)
		assert.Equal(t, "Please enter a valid email", ferr.Message)
	})

	t.Run("Missing password", func(t *testing.T) {
		_, ferr := ValidateLoginForm(map[string]string{"email": "a@b.co"})
		require.NotNil(t, ferr)
		assert.Equal(t, "password", ferr.Field)
	})
}

func TestValidateResetForm(t *testing.T) {
	email, ferr := ValidateResetForm(map[string]string{"email": " admin@naturexpress.in "})
	require.Nil(t, ferr)
	assert.Equal(t, "admin@naturexpress.in", email)

	_, ferr = ValidateResetForm(map[string]string{"email": "bad"})
	require.NotNil(t, ferr)
	assert.Equal(t, "email", ferr.Field)
}
