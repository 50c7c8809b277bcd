package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=8"`
	Description string `validate:"required,min=20"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{
			Email:       "a@x.com",
			Password:    "12345678",
			Description: "A sufficiently long description.",
		})
		assert.Empty(t, errs)
	})

	t.Run("missing fields", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{})
		require.Len(t, errs, 3)
		assert.Equal(t, "This field is required", errs["Email"])
	})

	t.Run("too short", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{
			Email:       "a@x.com",
			Password:    "1234567",
			Description: "too short",
		})
		assert.Equal(t, "Minimum length is 8", errs["Password"])
		assert.Equal(t, "Minimum length is 20", errs["Description"])
	})

	t.Run("bad email", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{
			Email:       "not-an-email",
			Password:    "12345678",
			Description: "A sufficiently long description.",
		})
		assert.Equal(t, "Invalid email format", errs["Email"])
	})
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.COM  "))
	assert.Equal(t, "a@x.com", NormalizeEmail("a@x.com"))
}
