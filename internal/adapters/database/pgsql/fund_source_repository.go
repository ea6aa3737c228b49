package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ngofin/ledgersync/internal/apperrors"
	"github.com/ngofin/ledgersync/internal/core/domain"
	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const fundSourceColumns = `fund_source_id, name, amount, original_amount, is_restricted, received_date, status, created_at, last_updated_at`

type fundSourceRepository struct {
	BaseRepository
}

// NewFundSourceRepository creates a new repository for fund-source data.
func NewFundSourceRepository(pool *pgxpool.Pool) portsrepo.FundSourceRepositoryFacade {
	return &fundSourceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FundSourceRepositoryFacade = (*fundSourceRepository)(nil)

// FindFundSourceByID retrieves a fund source by its ID.
func (r *fundSourceRepository) FindFundSourceByID(ctx context.Context, fundSourceID string) (*domain.FundSource, error) {
	query := `SELECT ` + fundSourceColumns + ` FROM fund_sources WHERE fund_source_id = $1;`

	fund, err := scanFundSource(r.Pool.QueryRow(ctx, query, fundSourceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("fund source %s: %w", fundSourceID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find fund source %s: %w", fundSourceID, err)
	}
	return fund, nil
}

// ListFundSources retrieves fund sources, most recently received first.
func (r *fundSourceRepository) ListFundSources(ctx context.Context, limit int) ([]domain.FundSource, error) {
	query := `SELECT ` + fundSourceColumns + ` FROM fund_sources ORDER BY received_date DESC, fund_source_id LIMIT $1;`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list fund sources: %w", err)
	}
	defer rows.Close()

	var funds []domain.FundSource
	for rows.Next() {
		fund, err := scanFundSource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund source: %w", err)
		}
		funds = append(funds, *fund)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fund sources: %w", err)
	}
	return funds, nil
}

// ApplyAmountDelta adjusts the remaining balance and recomputes the lifecycle
// status in one statement, so concurrent updates against the same fund cannot
// interleave between a read and a write. The balance is clamped at zero;
// amount and status always change together.
func (r *fundSourceRepository) ApplyAmountDelta(ctx context.Context, fundSourceID string, delta decimal.Decimal) (*domain.FundSource, error) {
	query := `
		UPDATE fund_sources
		SET amount = GREATEST(0, amount + $2),
		    status = CASE
		        WHEN GREATEST(0, amount + $2) = 0 THEN 'fully_used'
		        WHEN GREATEST(0, amount + $2) < original_amount THEN 'partially_used'
		        ELSE 'received'
		    END,
		    last_updated_at = $3
		WHERE fund_source_id = $1
		RETURNING ` + fundSourceColumns + `;
	`

	fund, err := scanFundSource(r.Pool.QueryRow(ctx, query, fundSourceID, delta, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("fund source %s: %w", fundSourceID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to apply amount delta to fund source %s: %w", fundSourceID, err)
	}
	return fund, nil
}

func scanFundSource(row pgx.Row) (*domain.FundSource, error) {
	var fund domain.FundSource
	if err := row.Scan(
		&fund.FundSourceID,
		&fund.Name,
		&fund.Amount,
		&fund.OriginalAmount,
		&fund.IsRestricted,
		&fund.ReceivedDate,
		&fund.Status,
		&fund.CreatedAt,
		&fund.LastUpdatedAt,
	); err != nil {
		return nil, err
	}
	return &fund, nil
}
