package services

import (
	"fmt"
	"time"

	"github.com/ngofin/ledgersync/internal/apperrors"
	"github.com/ngofin/ledgersync/internal/core/domain"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
	"github.com/ngofin/ledgersync/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// entryBuilder produces balanced journal-entry pairs from ledger events.
type entryBuilder struct{}

// NewEntryBuilder creates a new EntryBuilderSvc.
func NewEntryBuilder() portssvc.EntryBuilderSvc {
	return &entryBuilder{}
}

var _ portssvc.EntryBuilderSvc = (*entryBuilder)(nil)

// BuildEntries produces exactly two rows sharing one transaction id. The
// debit/credit invariant holds by construction: both rows carry the same
// amount on opposite sides.
func (b *entryBuilder) BuildEntries(event domain.LedgerEvent, categoryName string) ([]domain.JournalEntry, error) {
	switch event.Kind {
	case domain.EventExpenseApproved:
		return b.buildExpenseApproved(event.Expense, categoryName)
	case domain.EventExpensePaid:
		return b.buildExpensePaid(event.Expense)
	case domain.EventFundReceived:
		return b.buildFundReceived(event.FundSource)
	default:
		return nil, fmt.Errorf("%w: unknown event kind %q", apperrors.ErrInvalidEvent, event.Kind)
	}
}

// validateSource rejects payloads that would produce a zero-value or
// unattributable pair.
func validateSource(sourceID string, amount decimal.Decimal) error {
	if sourceID == "" {
		return fmt.Errorf("%w: missing source identifier", apperrors.ErrInvalidEvent)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrInvalidEvent, amount.String())
	}
	return nil
}

func (b *entryBuilder) buildExpenseApproved(expense *domain.Expense, categoryName string) ([]domain.JournalEntry, error) {
	if expense == nil {
		return nil, fmt.Errorf("%w: expense payload missing", apperrors.ErrInvalidEvent)
	}
	if err := validateSource(expense.ExpenseID, expense.Amount); err != nil {
		return nil, err
	}

	expenseAccount := accounting.ResolveExpenseAccountCode(categoryName)
	// The debit line is labelled after the category it was coded from, e.g.
	// "Program Supplies Expenses", falling back to the account's canonical
	// name when no category name is available.
	debitName := expenseAccount.Name
	if categoryName != "" {
		debitName = categoryName + " Expenses"
	}

	transactionID := "EXP-" + expense.ExpenseID
	now := time.Now().UTC()

	return []domain.JournalEntry{
		{
			TransactionID:   transactionID,
			AccountCode:     expenseAccount.Code,
			AccountName:     debitName,
			DebitAmount:     expense.Amount,
			CreditAmount:    decimal.Zero,
			Description:     "Expense approved: " + expense.Title,
			TransactionDate: expense.ExpenseDate,
			SourceType:      domain.SourceExpense,
			SourceID:        expense.ExpenseID,
			ReferenceNumber: transactionID,
			CreatedAt:       now,
		},
		{
			TransactionID:   transactionID,
			AccountCode:     accounting.AccountsPayable.Code,
			AccountName:     accounting.AccountsPayable.Name,
			DebitAmount:     decimal.Zero,
			CreditAmount:    expense.Amount,
			Description:     "Expense approved: " + expense.Title,
			TransactionDate: expense.ExpenseDate,
			SourceType:      domain.SourceExpense,
			SourceID:        expense.ExpenseID,
			ReferenceNumber: transactionID,
			CreatedAt:       now,
		},
	}, nil
}

func (b *entryBuilder) buildExpensePaid(expense *domain.Expense) ([]domain.JournalEntry, error) {
	if expense == nil {
		return nil, fmt.Errorf("%w: expense payload missing", apperrors.ErrInvalidEvent)
	}
	if err := validateSource(expense.ExpenseID, expense.Amount); err != nil {
		return nil, err
	}

	cashAccount := accounting.ResolveCashAccountCode(expense.FundSourceID)
	transactionID := "PAY-" + expense.ExpenseID
	// Payments are dated at payment time, not at the original expense date.
	now := time.Now().UTC()

	return []domain.JournalEntry{
		{
			TransactionID:   transactionID,
			AccountCode:     accounting.AccountsPayable.Code,
			AccountName:     accounting.AccountsPayable.Name,
			DebitAmount:     expense.Amount,
			CreditAmount:    decimal.Zero,
			Description:     "Expense paid: " + expense.Title,
			TransactionDate: now,
			SourceType:      domain.SourcePayment,
			SourceID:        expense.ExpenseID,
			ReferenceNumber: transactionID,
			CreatedAt:       now,
		},
		{
			TransactionID:   transactionID,
			AccountCode:     cashAccount.Code,
			AccountName:     cashAccount.Name,
			DebitAmount:     decimal.Zero,
			CreditAmount:    expense.Amount,
			Description:     "Expense paid: " + expense.Title,
			TransactionDate: now,
			SourceType:      domain.SourcePayment,
			SourceID:        expense.ExpenseID,
			ReferenceNumber: transactionID,
			CreatedAt:       now,
		},
	}, nil
}

func (b *entryBuilder) buildFundReceived(fund *domain.FundSource) ([]domain.JournalEntry, error) {
	if fund == nil {
		return nil, fmt.Errorf("%w: fund source payload missing", apperrors.ErrInvalidEvent)
	}
	if err := validateSource(fund.FundSourceID, fund.Amount); err != nil {
		return nil, err
	}

	cashAccount, revenueAccount := accounting.ReceiptAccounts(fund.IsRestricted)
	transactionID := "FUND-" + fund.FundSourceID
	now := time.Now().UTC()
	transactionDate := fund.ReceivedDate
	if transactionDate.IsZero() {
		transactionDate = now
	}

	return []domain.JournalEntry{
		{
			TransactionID:   transactionID,
			AccountCode:     cashAccount.Code,
			AccountName:     cashAccount.Name,
			DebitAmount:     fund.Amount,
			CreditAmount:    decimal.Zero,
			Description:     "Fund received: " + fund.Name,
			TransactionDate: transactionDate,
			SourceType:      domain.SourceFundReceipt,
			SourceID:        fund.FundSourceID,
			ReferenceNumber: transactionID,
			CreatedAt:       now,
		},
		{
			TransactionID:   transactionID,
			AccountCode:     revenueAccount.Code,
			AccountName:     revenueAccount.Name,
			DebitAmount:     decimal.Zero,
			CreditAmount:    fund.Amount,
			Description:     "Fund received: " + fund.Name,
			TransactionDate: transactionDate,
			SourceType:      domain.SourceFundReceipt,
			SourceID:        fund.FundSourceID,
			ReferenceNumber: transactionID,
			CreatedAt:       now,
		},
	}, nil
}
