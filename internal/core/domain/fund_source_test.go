package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveFundStatus(t *testing.T) {
	testCases := []struct {
		name     string
		amount   string
		original string
		expected FundStatus
	}{
		{"untouched fund", "10000", "10000", FundReceived},
		{"partially spent", "9500", "10000", FundPartiallyUsed},
		{"almost exhausted", "0.01", "10000", FundPartiallyUsed},
		{"exhausted", "0", "10000", FundFullyUsed},
		{"clamped below zero", "-300", "200", FundFullyUsed},
		{"zero original and zero remaining", "0", "0", FundFullyUsed},
		{"topped up beyond original", "12000", "10000", FundReceived},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			original := decimal.RequireFromString(tc.original)
			assert.Equal(t, tc.expected, DeriveFundStatus(amount, original))
		})
	}
}
