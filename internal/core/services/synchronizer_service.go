package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ngofin/ledgersync/internal/core/domain"
	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
	"github.com/ngofin/ledgersync/internal/middleware"
)

// fallbackCategoryName labels the debit line when the referenced budget
// category cannot be found. The account code falls back with it via the
// coding rules.
const fallbackCategoryName = "General"

// synchronizerService wires the builder, balance updater and journal store
// together: each dispatched event becomes one persisted balanced transaction,
// plus a balance update for payments drawn from a tracked fund.
type synchronizerService struct {
	builder      portssvc.EntryBuilderSvc
	fundBalance  portssvc.FundBalanceSvc
	categoryRepo portsrepo.CategoryReader
	journalRepo  portsrepo.JournalWriter
}

// NewSynchronizerService creates a new SynchronizerSvc.
func NewSynchronizerService(
	builder portssvc.EntryBuilderSvc,
	fundBalance portssvc.FundBalanceSvc,
	categoryRepo portsrepo.CategoryReader,
	journalRepo portsrepo.JournalWriter,
) portssvc.SynchronizerSvc {
	return &synchronizerService{
		builder:      builder,
		fundBalance:  fundBalance,
		categoryRepo: categoryRepo,
		journalRepo:  journalRepo,
	}
}

var _ portssvc.SynchronizerSvc = (*synchronizerService)(nil)

// HandleEvent processes one dispatched event to its terminal write. Each
// stage failure aborts only this event; the caller logs the error and keeps
// consuming the feed.
func (s *synchronizerService) HandleEvent(ctx context.Context, event domain.LedgerEvent) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	categoryName := ""
	if event.Kind == domain.EventExpenseApproved {
		categoryName = s.lookupCategoryName(ctx, event.Expense)
	}

	entries, err := s.builder.BuildEntries(event, categoryName)
	if err != nil {
		return fmt.Errorf("failed to build journal entries: %w", err)
	}

	// All rows of the pair land together or not at all.
	if err := s.journalRepo.SaveEntries(ctx, entries); err != nil {
		return fmt.Errorf("failed to persist journal entries for %s: %w", entries[0].TransactionID, err)
	}
	logger.Info("Journal entries persisted",
		slog.String("transaction_id", entries[0].TransactionID),
		slog.Int("rows", len(entries)),
	)

	// Only payments drawn from a tracked fund touch a fund-source balance.
	if event.Kind == domain.EventExpensePaid && event.Expense.FundSourceID != nil {
		delta := event.Expense.Amount.Neg()
		if _, err := s.fundBalance.ApplyDelta(ctx, *event.Expense.FundSourceID, delta); err != nil {
			return fmt.Errorf("failed to update fund source balance for expense %s: %w", event.Expense.ExpenseID, err)
		}
	}

	return nil
}

// lookupCategoryName resolves the budget category for an expense event,
// falling back to a generic name when the lookup misses so the event can
// still be coded.
func (s *synchronizerService) lookupCategoryName(ctx context.Context, expense *domain.Expense) string {
	if expense == nil || expense.CategoryID == "" {
		return fallbackCategoryName
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, expense.CategoryID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Budget category lookup failed, using fallback name",
			slog.String("category_id", expense.CategoryID),
			slog.String("error", err.Error()),
		)
		return fallbackCategoryName
	}
	return category.Name
}
