package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ngofin/ledgersync/internal/core/domain"
	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
)

// notificationBuffer absorbs bursts from the store while handlers are busy.
const notificationBuffer = 64

// reconnectDelay paces reattempts after the listening connection drops.
const reconnectDelay = 3 * time.Second

var watchedFeeds = []domain.FeedName{
	domain.FeedExpenseApproved,
	domain.FeedExpensePaid,
	domain.FeedFundReceived,
}

// changeFeed implements the store's row-level change subscription over
// Postgres LISTEN/NOTIFY. Row-image payloads are produced by the trigger
// functions installed in the migrations.
type changeFeed struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewChangeFeed creates a ChangeFeed on the given pool.
func NewChangeFeed(pool *pgxpool.Pool, logger *slog.Logger) portsrepo.ChangeFeed {
	return &changeFeed{pool: pool, logger: logger}
}

var _ portsrepo.ChangeFeed = (*changeFeed)(nil)

// Subscribe opens a dedicated listening connection and returns a channel of
// raw notifications. The channel is closed when ctx is cancelled. Delivery is
// at-least-once: notifications raised while the connection is down are lost,
// which the consumer must tolerate.
func (f *changeFeed) Subscribe(ctx context.Context) (<-chan domain.ChangeNotification, error) {
	conn, err := f.listen(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan domain.ChangeNotification, notificationBuffer)
	go f.forward(ctx, conn, out)
	return out, nil
}

// listen acquires a connection and registers it on every watched feed.
func (f *changeFeed) listen(ctx context.Context) (*pgxpool.Conn, error) {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire listener connection: %w", err)
	}

	for _, feed := range watchedFeeds {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{string(feed)}.Sanitize()); err != nil {
			conn.Release()
			return nil, fmt.Errorf("failed to listen on feed %s: %w", feed, err)
		}
	}
	return conn, nil
}

// forward pumps notifications from the listening connection into out,
// reconnecting when the connection drops.
func (f *changeFeed) forward(ctx context.Context, conn *pgxpool.Conn, out chan<- domain.ChangeNotification) {
	defer close(out)
	defer func() {
		if conn != nil {
			conn.Release()
		}
	}()

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			conn.Release()
			conn = nil
			if ctx.Err() != nil {
				return
			}
			f.logger.Error("Change feed connection lost, reconnecting",
				slog.String("error", err.Error()),
			)
			conn = f.reconnect(ctx)
			if conn == nil {
				return
			}
			continue
		}

		select {
		case out <- domain.ChangeNotification{
			Feed:    domain.FeedName(notification.Channel),
			Payload: []byte(notification.Payload),
		}:
		case <-ctx.Done():
			return
		}
	}
}

// reconnect retries the LISTEN setup until it succeeds or ctx is cancelled.
func (f *changeFeed) reconnect(ctx context.Context) *pgxpool.Conn {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}

		conn, err := f.listen(ctx)
		if err != nil {
			f.logger.Error("Change feed reconnect failed", slog.String("error", err.Error()))
			continue
		}
		f.logger.Info("Change feed reconnected")
		return conn
	}
}
