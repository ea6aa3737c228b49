package dto

import (
	"time"

	"github.com/ngofin/ledgersync/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseRow is the row image carried by expense change notifications. Field
// names match the store's column names; the trigger emits timestamps in
// RFC 3339.
type ExpenseRow struct {
	ExpenseID    string          `json:"expense_id"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   string          `json:"category_id"`
	FundSourceID *string         `json:"fund_source_id"`
	ExpenseDate  time.Time       `json:"expense_date"`
	Status       string          `json:"status"`
}

// ToDomain converts the row image to a domain expense.
func (r ExpenseRow) ToDomain() domain.Expense {
	return domain.Expense{
		ExpenseID:    r.ExpenseID,
		Title:        r.Title,
		Amount:       r.Amount,
		CategoryID:   r.CategoryID,
		FundSourceID: r.FundSourceID,
		ExpenseDate:  r.ExpenseDate,
		Status:       domain.ExpenseStatus(r.Status),
	}
}

// FundSourceRow is the row image carried by fund-source change notifications.
type FundSourceRow struct {
	FundSourceID   string          `json:"fund_source_id"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	IsRestricted   bool            `json:"is_restricted"`
	ReceivedDate   time.Time       `json:"received_date"`
	Status         string          `json:"status"`
}

// ToDomain converts the row image to a domain fund source.
func (r FundSourceRow) ToDomain() domain.FundSource {
	return domain.FundSource{
		FundSourceID:   r.FundSourceID,
		Name:           r.Name,
		Amount:         r.Amount,
		OriginalAmount: r.OriginalAmount,
		IsRestricted:   r.IsRestricted,
		ReceivedDate:   r.ReceivedDate,
		Status:         domain.FundStatus(r.Status),
	}
}
