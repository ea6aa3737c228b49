package dto

import (
	"time"

	"github.com/ngofin/ledgersync/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListJournalEntriesParams binds the query parameters of the entry listing
// endpoint.
type ListJournalEntriesParams struct {
	SourceType *string `form:"sourceType" binding:"omitempty,sourcetype"`
	SourceID   *string `form:"sourceID"`
	Limit      int     `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	NextToken  *string `form:"nextToken"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID         string          `json:"entryID"`
	TransactionID   string          `json:"transactionID"`
	AccountCode     string          `json:"accountCode"`
	AccountName     string          `json:"accountName"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	SourceType      string          `json:"sourceType"`
	SourceID        string          `json:"sourceID"`
	ReferenceNumber string          `json:"referenceNumber"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListJournalEntriesResponse is the paginated listing payload.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:         entry.EntryID,
		TransactionID:   entry.TransactionID,
		AccountCode:     entry.AccountCode,
		AccountName:     entry.AccountName,
		DebitAmount:     entry.DebitAmount,
		CreditAmount:    entry.CreditAmount,
		Description:     entry.Description,
		TransactionDate: entry.TransactionDate,
		SourceType:      string(entry.SourceType),
		SourceID:        entry.SourceID,
		ReferenceNumber: entry.ReferenceNumber,
		CreatedAt:       entry.CreatedAt,
	}
}

// ToJournalEntryResponses converts a slice of domain entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
