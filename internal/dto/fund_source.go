package dto

import (
	"time"

	"github.com/ngofin/ledgersync/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FundSourceResponse defines the data returned for a fund source.
type FundSourceResponse struct {
	FundSourceID   string          `json:"fundSourceID"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	IsRestricted   bool            `json:"isRestricted"`
	ReceivedDate   time.Time       `json:"receivedDate"`
	Status         string          `json:"status"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToFundSourceResponse converts a domain.FundSource to its response DTO.
func ToFundSourceResponse(fund *domain.FundSource) FundSourceResponse {
	return FundSourceResponse{
		FundSourceID:   fund.FundSourceID,
		Name:           fund.Name,
		Amount:         fund.Amount,
		OriginalAmount: fund.OriginalAmount,
		IsRestricted:   fund.IsRestricted,
		ReceivedDate:   fund.ReceivedDate,
		Status:         string(fund.Status),
		LastUpdatedAt:  fund.LastUpdatedAt,
	}
}

// ToFundSourceResponses converts a slice of domain fund sources.
func ToFundSourceResponses(funds []domain.FundSource) []FundSourceResponse {
	responses := make([]FundSourceResponse, len(funds))
	for i := range funds {
		responses[i] = ToFundSourceResponse(&funds[i])
	}
	return responses
}
