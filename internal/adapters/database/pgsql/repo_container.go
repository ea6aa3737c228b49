package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		ExpenseRepo:    NewExpenseRepository(pool),
		CategoryRepo:   NewCategoryRepository(pool),
		FundSourceRepo: NewFundSourceRepository(pool),
		JournalRepo:    NewJournalRepository(pool),
	}
}
