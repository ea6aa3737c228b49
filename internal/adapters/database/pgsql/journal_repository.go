package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ngofin/ledgersync/internal/apperrors"
	"github.com/ngofin/ledgersync/internal/core/domain"
	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
	"github.com/ngofin/ledgersync/internal/utils/pagination"
)

const journalEntryColumns = `entry_id, transaction_id, account_code, account_name, debit_amount, credit_amount, description, transaction_date, source_type, source_id, reference_number, created_at`

type journalRepository struct {
	BaseRepository
}

// NewJournalRepository creates a new repository for journal-entry data.
func NewJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &journalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

// SaveEntries inserts every row of one balanced transaction inside a single
// DB transaction: either all rows land or none do. There is no update or
// delete path; journal entries are immutable once written.
func (r *journalRepository) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits successfully.
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO journal_entries (` + journalEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, entry := range entries {
		entryID := entry.EntryID
		if entryID == "" {
			entryID = uuid.NewString()
		}
		createdAt := entry.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		batch.Queue(query,
			entryID,
			entry.TransactionID,
			entry.AccountCode,
			entry.AccountName,
			entry.DebitAmount,
			entry.CreditAmount,
			entry.Description,
			entry.TransactionDate,
			entry.SourceType,
			entry.SourceID,
			entry.ReferenceNumber,
			createdAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert journal entries for transaction %s: %w", entries[0].TransactionID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch for transaction %s: %w", entries[0].TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindEntriesByTransactionID returns all rows of one balanced set.
func (r *journalRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE transaction_id = $1
		ORDER BY debit_amount DESC, entry_id;
	`

	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	entries, err := scanJournalEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return entries, nil
}

// ListEntries retrieves a filtered page of entries, newest first, using a
// keyset cursor over (created_at, entry_id).
func (r *journalRepository) ListEntries(ctx context.Context, filter portsrepo.JournalEntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries`
	args := []interface{}{}
	conditions := []string{}

	if filter.SourceType != nil {
		args = append(args, *filter.SourceType)
		conditions = append(conditions, "source_type = $"+strconv.Itoa(len(args)))
	}
	if filter.SourceID != nil {
		args = append(args, *filter.SourceID)
		conditions = append(conditions, "source_id = $"+strconv.Itoa(len(args)))
	}
	if nextToken != nil {
		cursorCreatedAt, cursorEntryID, err := decodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, cursorCreatedAt, cursorEntryID)
		conditions = append(conditions, "(created_at, entry_id) < ($"+strconv.Itoa(len(args)-1)+", $"+strconv.Itoa(len(args))+")")
	}

	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}

	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)
	query += " ORDER BY created_at DESC, entry_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanJournalEntries(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		encoded := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.EntryID)
		token = &encoded
	}
	return entries, token, nil
}

func decodeEntryCursor(token string) (time.Time, string, error) {
	fields, err := pagination.DecodeMultiFieldToken(token)
	if err != nil {
		return time.Time{}, "", err
	}
	if len(fields) != 2 {
		return time.Time{}, "", errors.New("invalid pagination token format (field count)")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	return createdAt, fields[1], nil
}

func scanJournalEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	for rows.Next() {
		var entry domain.JournalEntry
		if err := rows.Scan(
			&entry.EntryID,
			&entry.TransactionID,
			&entry.AccountCode,
			&entry.AccountName,
			&entry.DebitAmount,
			&entry.CreditAmount,
			&entry.Description,
			&entry.TransactionDate,
			&entry.SourceType,
			&entry.SourceID,
			&entry.ReferenceNumber,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal entries: %w", err)
	}
	return entries, nil
}
