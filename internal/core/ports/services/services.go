package services

import (
	"context"

	"github.com/ngofin/ledgersync/internal/core/domain"
	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// EntryBuilderSvc builds balanced journal entries from ledger events. It is a
// pure transform: it never touches the store.
type EntryBuilderSvc interface {
	// BuildEntries produces exactly two rows sharing one transaction id, with
	// equal debit and credit totals. categoryName is only consulted for
	// expense-approval events. Returns ErrInvalidEvent for non-positive
	// amounts or missing identifiers.
	BuildEntries(event domain.LedgerEvent, categoryName string) ([]domain.JournalEntry, error)
}

// FundBalanceSvc applies signed amount deltas to fund-source balances and
// keeps the derived status consistent.
type FundBalanceSvc interface {
	ApplyDelta(ctx context.Context, fundSourceID string, delta decimal.Decimal) (*domain.FundSource, error)
}

// SynchronizerSvc materializes journal entries and balance updates for one
// dispatched event. A returned error means the event was dropped; it must not
// stop the caller from processing subsequent events.
type SynchronizerSvc interface {
	HandleEvent(ctx context.Context, event domain.LedgerEvent) error
}

// DispatcherSvc consumes the store's change feed and routes each decoded
// event to the synchronizer.
type DispatcherSvc interface {
	// Run blocks until ctx is cancelled or the feed closes, waiting for any
	// in-flight event handlers before returning.
	Run(ctx context.Context) error
}

// LedgerReaderSvc serves the read-only operations API.
type LedgerReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID string) ([]domain.JournalEntry, error)
	ListEntries(ctx context.Context, filter portsrepo.JournalEntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
	GetFundSource(ctx context.Context, fundSourceID string) (*domain.FundSource, error)
	ListFundSources(ctx context.Context, limit int) ([]domain.FundSource, error)
	GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error)
}

// ServiceContainer holds every initialized service for injection into the
// dispatcher and handlers.
type ServiceContainer struct {
	Builder      EntryBuilderSvc
	FundBalance  FundBalanceSvc
	Synchronizer SynchronizerSvc
	Dispatcher   DispatcherSvc
	Reader       LedgerReaderSvc
}
