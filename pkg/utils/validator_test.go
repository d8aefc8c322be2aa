package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Role  string  `json:"role" validate:"required,oneof=worker seeker"`
	Pay   float64 `json:"pay" validate:"gt=0"`
	Note  string  `json:"-" validate:"max=3"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Name: "Riya", Email: "riya@example.com", Role: "worker", Pay: 1})
	assert.Nil(t, errs)
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	errs := ValidateStruct(&sampleRequest{Email: "not-an-email", Role: "admin", Note: "too long"})

	assert.Equal(t, map[string]string{
		"name":  "This field is required",
		"email": "Invalid email format",
		"role":  "Must be one of: worker, seeker",
		"pay":   "Must be greater than 0",
		"Note":  "Maximum is 3",
	}, errs)
}

func TestFormatValidationErrors_SortedByField(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{
		"role":  "Must be one of: worker, seeker",
		"email": "Invalid email format",
	})
	assert.Equal(t, "email: Invalid email format; role: Must be one of: worker, seeker", msg)
}
