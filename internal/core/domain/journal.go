package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceType tags a journal entry with the kind of business event that
// produced it.
type SourceType string

const (
	SourceExpense     SourceType = "expense"
	SourcePayment     SourceType = "payment"
	SourceFundReceipt SourceType = "fund_receipt"
)

// JournalEntry is one row of a double-entry accounting record. Rows are
// always produced in balanced sets sharing a TransactionID and are immutable
// once written; corrections would require a new offsetting transaction.
// Exactly one of DebitAmount/CreditAmount is non-zero per row.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`
	TransactionID   string          `json:"transactionID"`
	AccountCode     string          `json:"accountCode"`
	AccountName     string          `json:"accountName"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	SourceType      SourceType      `json:"sourceType"`
	SourceID        string          `json:"sourceID"` // Back-reference to the triggering record
	ReferenceNumber string          `json:"referenceNumber"`
	CreatedAt       time.Time       `json:"createdAt"`
}
