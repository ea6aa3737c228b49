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

type categoryRepository struct {
	BaseRepository
}

// NewCategoryRepository creates a new read-only repository for budget
// categories.
func NewCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryReader {
	return &categoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryReader = (*categoryRepository)(nil)

// FindCategoryByID retrieves a budget category by its ID.
func (r *categoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.BudgetCategory, error) {
	query := `SELECT category_id, name FROM budget_categories WHERE category_id = $1;`

	var category domain.BudgetCategory
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(&category.CategoryID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("budget category %s: %w", categoryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find budget category %s: %w", categoryID, err)
	}
	return &category, nil
}
