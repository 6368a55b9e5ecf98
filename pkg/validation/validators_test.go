package validation_test

import (
	"testing"

	"go-studio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"asha@example.com",
		"a.b+tag@sub.example.co.in",
		"x@y.z",
	}
	invalid := []string{
		"",
		"not-an-email",
		"a@b",
		"a b@c.com",
		"a@b c.com",
		"@b.com",
		"a@@b.com",
		"a@b.",
	}

	for _, addr := range valid {
		assert.True(t, validation.ValidEmail(addr), addr)
	}
	for _, addr := range invalid {
		assert.False(t, validation.ValidEmail(addr), addr)
	}
}

func TestRegisteredTags(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	assert.NoError(t, v.Var("asha@example.com", "form_email"))
	assert.Error(t, v.Var("not-an-email", "form_email"))

	assert.NoError(t, v.Var("+919999999999", "valid_phone"))
	assert.NoError(t, v.Var("", "valid_phone")) // optional unless required
	assert.Error(t, v.Var("99-99", "valid_phone"))
}
