package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ngofin/ledgersync/internal/apperrors"
	"github.com/ngofin/ledgersync/internal/core/domain"
	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
)

const expenseColumns = `expense_id, title, amount, category_id, fund_source_id, expense_date, status, created_at`

type expenseRepository struct {
	BaseRepository
}

// NewExpenseRepository creates a new read-only repository for expense data.
// Expenses are owned by the expense-management subsystem; the ledger core
// never writes them.
func NewExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseReader {
	return &expenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseReader = (*expenseRepository)(nil)

// FindExpenseByID retrieves an expense by its ID.
func (r *expenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`

	expense, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return expense, nil
}

// ListExpenses retrieves recent expenses, optionally filtered by status.
func (r *expenseRepository) ListExpenses(ctx context.Context, status *domain.ExpenseStatus, limit int) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	args := []interface{}{}
	if status != nil {
		args = append(args, *status)
		query += ` WHERE status = $1`
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY expense_date DESC, expense_id LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}
	return expenses, nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var expense domain.Expense
	if err := row.Scan(
		&expense.ExpenseID,
		&expense.Title,
		&expense.Amount,
		&expense.CategoryID,
		&expense.FundSourceID,
		&expense.ExpenseDate,
		&expense.Status,
		&expense.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &expense, nil
}
