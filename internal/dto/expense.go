package dto

import (
	"time"

	"github.com/ngofin/ledgersync/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID    string          `json:"expenseID"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   string          `json:"categoryID"`
	FundSourceID *string         `json:"fundSourceID,omitempty"`
	ExpenseDate  time.Time       `json:"expenseDate"`
	Status       string          `json:"status"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(expense *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    expense.ExpenseID,
		Title:        expense.Title,
		Amount:       expense.Amount,
		CategoryID:   expense.CategoryID,
		FundSourceID: expense.FundSourceID,
		ExpenseDate:  expense.ExpenseDate,
		Status:       string(expense.Status),
	}
}
