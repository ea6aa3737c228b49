package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundStatus is the usage state of a fund source, derived from its remaining
// balance.
type FundStatus string

const (
	FundReceived      FundStatus = "received"
	FundPartiallyUsed FundStatus = "partially_used"
	FundFullyUsed     FundStatus = "fully_used"
)

// FundSource is a pool of money (donation, grant) with a remaining balance.
// Once a fund source exists, the ledger core is the sole writer of Amount and
// Status; creation happens elsewhere.
type FundSource struct {
	FundSourceID   string          `json:"fundSourceID"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"` // Remaining balance, never negative
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	IsRestricted   bool            `json:"isRestricted"`
	ReceivedDate   time.Time       `json:"receivedDate"`
	Status         FundStatus      `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// DeriveFundStatus maps a (remaining, original) amount pair to the fund's
// lifecycle status: zero remaining means fully used, anything between zero
// and the original amount means partially used.
func DeriveFundStatus(amount, originalAmount decimal.Decimal) FundStatus {
	switch {
	case amount.LessThanOrEqual(decimal.Zero):
		return FundFullyUsed
	case amount.LessThan(originalAmount):
		return FundPartiallyUsed
	default:
		return FundReceived
	}
}
