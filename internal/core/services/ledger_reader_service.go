package services

import (
	"context"

	"github.com/ngofin/ledgersync/internal/core/domain"
	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
)

// ledgerReaderService serves the read-only operations API. Journal entries
// are immutable and fund balances are owned by the synchronizer, so nothing
// here writes.
type ledgerReaderService struct {
	journalRepo portsrepo.JournalReader
	fundRepo    portsrepo.FundSourceReader
	expenseRepo portsrepo.ExpenseReader
}

// NewLedgerReaderService creates a new LedgerReaderSvc.
func NewLedgerReaderService(
	journalRepo portsrepo.JournalReader,
	fundRepo portsrepo.FundSourceReader,
	expenseRepo portsrepo.ExpenseReader,
) portssvc.LedgerReaderSvc {
	return &ledgerReaderService{
		journalRepo: journalRepo,
		fundRepo:    fundRepo,
		expenseRepo: expenseRepo,
	}
}

var _ portssvc.LedgerReaderSvc = (*ledgerReaderService)(nil)

func (s *ledgerReaderService) GetTransaction(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	return s.journalRepo.FindEntriesByTransactionID(ctx, transactionID)
}

func (s *ledgerReaderService) ListEntries(ctx context.Context, filter portsrepo.JournalEntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	return s.journalRepo.ListEntries(ctx, filter, limit, nextToken)
}

func (s *ledgerReaderService) GetFundSource(ctx context.Context, fundSourceID string) (*domain.FundSource, error) {
	return s.fundRepo.FindFundSourceByID(ctx, fundSourceID)
}

func (s *ledgerReaderService) ListFundSources(ctx context.Context, limit int) ([]domain.FundSource, error) {
	return s.fundRepo.ListFundSources(ctx, limit)
}

func (s *ledgerReaderService) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}
