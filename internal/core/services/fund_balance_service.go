package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ngofin/ledgersync/internal/apperrors"
	"github.com/ngofin/ledgersync/internal/core/domain"
	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
	"github.com/ngofin/ledgersync/internal/middleware"
	"github.com/shopspring/decimal"
)

// fundBalanceService applies signed deltas to fund-source balances.
type fundBalanceService struct {
	fundRepo portsrepo.FundSourceRepositoryFacade
}

// NewFundBalanceService creates a new FundBalanceSvc.
func NewFundBalanceService(fundRepo portsrepo.FundSourceRepositoryFacade) portssvc.FundBalanceSvc {
	return &fundBalanceService{fundRepo: fundRepo}
}

var _ portssvc.FundBalanceSvc = (*fundBalanceService)(nil)

// ApplyDelta adjusts the fund's remaining balance by delta. The repository
// performs the clamp-at-zero and status recomputation in a single atomic
// update, so amount and status can never diverge and concurrent payments
// against the same fund cannot lose updates.
func (s *fundBalanceService) ApplyDelta(ctx context.Context, fundSourceID string, delta decimal.Decimal) (*domain.FundSource, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if fundSourceID == "" {
		return nil, fmt.Errorf("%w: missing fund source id", apperrors.ErrInvalidEvent)
	}

	updated, err := s.fundRepo.ApplyAmountDelta(ctx, fundSourceID, delta)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Event raced with a fund-source deletion. The caller drops the
			// event; retrying a permanently missing record would loop forever.
			logger.Warn("Fund source not found during balance update",
				slog.String("fund_source_id", fundSourceID),
				slog.String("delta", delta.String()),
			)
			return nil, err
		}
		return nil, fmt.Errorf("failed to apply delta to fund source %s: %w", fundSourceID, err)
	}

	logger.Info("Fund source balance updated",
		slog.String("fund_source_id", fundSourceID),
		slog.String("delta", delta.String()),
		slog.String("amount", updated.Amount.String()),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}
