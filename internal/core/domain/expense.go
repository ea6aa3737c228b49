package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus is the lifecycle state of an expense record.
type ExpenseStatus string

const (
	ExpenseDraft    ExpenseStatus = "draft"
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpensePaid     ExpenseStatus = "paid"
	ExpenseRejected ExpenseStatus = "rejected"
)

// Expense is an expense record owned by the expense-management subsystem.
// The ledger core only reads it when its status transitions; it never writes
// expenses.
type Expense struct {
	ExpenseID    string          `json:"expenseID"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   string          `json:"categoryID"`
	FundSourceID *string         `json:"fundSourceID"` // Nullable; set when paid from a tracked fund
	ExpenseDate  time.Time       `json:"expenseDate"`
	Status       ExpenseStatus   `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}
