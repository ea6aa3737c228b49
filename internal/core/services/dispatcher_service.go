package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ngofin/ledgersync/internal/apperrors"
	"github.com/ngofin/ledgersync/internal/core/domain"
	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
	"github.com/ngofin/ledgersync/internal/dto"
	"github.com/ngofin/ledgersync/internal/middleware"
)

// dispatcherService consumes the store's change feed and routes decoded
// events to the synchronizer. It performs no business logic itself.
type dispatcherService struct {
	feed   portsrepo.ChangeFeed
	sync   portssvc.SynchronizerSvc
	logger *slog.Logger
}

// NewDispatcherService creates a new DispatcherSvc.
func NewDispatcherService(feed portsrepo.ChangeFeed, syncSvc portssvc.SynchronizerSvc, logger *slog.Logger) portssvc.DispatcherSvc {
	return &dispatcherService{
		feed:   feed,
		sync:   syncSvc,
		logger: logger,
	}
}

var _ portssvc.DispatcherSvc = (*dispatcherService)(nil)

// Run consumes the change feed until ctx is cancelled or the feed closes.
// Each notification is handled in its own goroutine so slow store round-trips
// on one event do not stall the feed. A failing event is logged and dropped;
// the subscription keeps running.
func (s *dispatcherService) Run(ctx context.Context) error {
	notifications, err := s.feed.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to change feed: %w", err)
	}
	s.logger.Info("Change-event dispatcher started")

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case notification, ok := <-notifications:
			if !ok {
				return nil
			}

			event, err := decodeNotification(notification)
			if err != nil {
				s.logger.Warn("Dropping undecodable change notification",
					slog.String("feed", string(notification.Feed)),
					slog.String("error", err.Error()),
				)
				continue
			}

			wg.Add(1)
			go func(ev domain.LedgerEvent) {
				defer wg.Done()
				s.dispatch(ctx, ev)
			}(event)
		}
	}
}

// dispatch runs one event to completion, scoping log output with the event's
// correlation id.
func (s *dispatcherService) dispatch(ctx context.Context, event domain.LedgerEvent) {
	logger := s.logger.With(
		slog.String("event_id", event.EventID),
		slog.String("event_kind", string(event.Kind)),
	)
	ctx = middleware.ContextWithLogger(ctx, logger)

	start := time.Now()
	if err := s.sync.HandleEvent(ctx, event); err != nil {
		logger.Error("Event processing failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)),
		)
		return
	}
	logger.Info("Event processed", slog.Duration("elapsed", time.Since(start)))
}

// decodeNotification maps a raw row image onto a typed ledger event.
func decodeNotification(notification domain.ChangeNotification) (domain.LedgerEvent, error) {
	event := domain.LedgerEvent{
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
	}

	switch notification.Feed {
	case domain.FeedExpenseApproved, domain.FeedExpensePaid:
		var row dto.ExpenseRow
		if err := json.Unmarshal(notification.Payload, &row); err != nil {
			return domain.LedgerEvent{}, fmt.Errorf("%w: malformed expense row image: %v", apperrors.ErrInvalidEvent, err)
		}
		expense := row.ToDomain()
		event.Expense = &expense
		if notification.Feed == domain.FeedExpenseApproved {
			event.Kind = domain.EventExpenseApproved
		} else {
			event.Kind = domain.EventExpensePaid
		}
	case domain.FeedFundReceived:
		var row dto.FundSourceRow
		if err := json.Unmarshal(notification.Payload, &row); err != nil {
			return domain.LedgerEvent{}, fmt.Errorf("%w: malformed fund source row image: %v", apperrors.ErrInvalidEvent, err)
		}
		fund := row.ToDomain()
		event.FundSource = &fund
		event.Kind = domain.EventFundReceived
	default:
		return domain.LedgerEvent{}, fmt.Errorf("%w: unknown feed %q", apperrors.ErrInvalidEvent, notification.Feed)
	}

	return event, nil
}
