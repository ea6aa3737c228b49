package repositories

import (
	"context"

	"github.com/ngofin/ledgersync/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Note: all store access goes through these interfaces so the synchronizer
// can be exercised against mocks. Context is included for cancellation and
// store-level timeouts.

// ExpenseReader defines read operations for expense rows. The ledger core
// never writes expenses.
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves recent expenses, optionally filtered by status.
	ListExpenses(ctx context.Context, status *domain.ExpenseStatus, limit int) ([]domain.Expense, error)
}

// CategoryReader defines the budget-category lookup consumed by account
// coding resolution.
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.BudgetCategory, error)
}

// FundSourceReader defines read operations for fund sources.
type FundSourceReader interface {
	FindFundSourceByID(ctx context.Context, fundSourceID string) (*domain.FundSource, error)
	ListFundSources(ctx context.Context, limit int) ([]domain.FundSource, error)
}

// FundSourceWriter defines the single mutation the ledger core performs on
// fund sources.
type FundSourceWriter interface {
	// ApplyAmountDelta atomically adjusts the remaining balance by delta,
	// clamping at zero, and recomputes the lifecycle status in the same
	// statement. Amount and status are never written separately. Returns the
	// updated row, or ErrNotFound if the fund source no longer exists.
	ApplyAmountDelta(ctx context.Context, fundSourceID string, delta decimal.Decimal) (*domain.FundSource, error)
}

// FundSourceRepositoryFacade combines all fund-source repository interfaces.
type FundSourceRepositoryFacade interface {
	FundSourceReader
	FundSourceWriter
}

// JournalEntryFilter narrows ListEntries results.
type JournalEntryFilter struct {
	SourceType *domain.SourceType
	SourceID   *string
}

// JournalWriter defines the persistence operation for journal entries.
// Entries are immutable: there is no update or delete path.
type JournalWriter interface {
	// SaveEntries persists every row of one balanced transaction atomically;
	// either all rows land or none do.
	SaveEntries(ctx context.Context, entries []domain.JournalEntry) error
}

// JournalReader defines read operations for journal entries.
type JournalReader interface {
	// FindEntriesByTransactionID returns the balanced set of rows sharing one
	// transaction id, or ErrNotFound when no rows exist.
	FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error)

	// ListEntries retrieves a filtered, cursor-paginated list of entries,
	// newest first. The returned token, when non-nil, fetches the next page.
	ListEntries(ctx context.Context, filter JournalEntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalWriter
	JournalReader
}

// ChangeFeed delivers row-level change notifications from the store.
// Delivery is at-least-once and unordered across feeds; within a single feed,
// notifications arrive in commit order. The channel is closed when the
// subscription ends.
type ChangeFeed interface {
	Subscribe(ctx context.Context) (<-chan domain.ChangeNotification, error)
}

// RepositoryProvider aggregates every repository the services need.
type RepositoryProvider struct {
	ExpenseRepo    ExpenseReader
	CategoryRepo   CategoryReader
	FundSourceRepo FundSourceRepositoryFacade
	JournalRepo    JournalRepositoryFacade
}
