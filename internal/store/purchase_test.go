package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateExpiration(t *testing.T) {
	valid := []string{"09/26", "01/00", "12/99"}
	for _, exp := range valid {
		assert.NoError(t, ValidateExpiration(exp), exp)
	}

	invalid := []string{"13/25", "1/25", "13-25", "00/25", "09/2026", "", "0926", "ab/cd"}
	for _, exp := range invalid {
		assert.ErrorIs(t, ValidateExpiration(exp), ErrInvalidExpiration, exp)
	}
}

func TestPaymentReference(t *testing.T) {
	assert.Equal(t, "payment_1111", paymentReference("4111111111111111"))
	assert.Equal(t, "payment_123", paymentReference("123"))
	assert.Equal(t, "payment_", paymentReference(""))
}
