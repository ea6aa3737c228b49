package domain

import "time"

// FeedName identifies one logical change feed on the store.
type FeedName string

const (
	FeedExpenseApproved FeedName = "ledger_expense_approved"
	FeedExpensePaid     FeedName = "ledger_expense_paid"
	FeedFundReceived    FeedName = "ledger_fund_received"
)

// ChangeNotification is a raw row-level change delivered by the store's
// subscription. Payload is the JSON image of the new row. Delivery is
// at-least-once; within one feed, notifications arrive in commit order.
type ChangeNotification struct {
	Feed    FeedName
	Payload []byte
}

// EventKind classifies a dispatched ledger event.
type EventKind string

const (
	EventExpenseApproved EventKind = "expense_approved"
	EventExpensePaid     EventKind = "expense_paid"
	EventFundReceived    EventKind = "fund_received"
)

// LedgerEvent is a decoded change notification routed to the synchronizer.
// Exactly one of Expense/FundSource is set, depending on Kind.
type LedgerEvent struct {
	EventID    string // Correlation id for logging, not persisted
	Kind       EventKind
	Expense    *Expense
	FundSource *FundSource
	OccurredAt time.Time
}
