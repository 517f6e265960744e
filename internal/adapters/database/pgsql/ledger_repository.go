package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
	portsrepo "github.com/hisabline/party_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxLedgerRepository creates a new repository for ledger entries.
func NewPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerStoreFacade {
	return &PgxLedgerRepository{pool: pool}
}

var _ portsrepo.LedgerStoreFacade = (*PgxLedgerRepository)(nil)

const entryColumns = `entry_id, party_id, entry_date, credit, debit, balance, entry_type, remarks, party_name, transaction_party_name, is_old_record, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (domain.TransactionEntry, error) {
	var e domain.TransactionEntry
	err := row.Scan(
		&e.EntryID,
		&e.PartyID,
		&e.Date,
		&e.Credit,
		&e.Debit,
		&e.Balance,
		&e.Type,
		&e.Remarks,
		&e.PartyName,
		&e.TransactionPartyName,
		&e.IsOldRecord,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

// FindLedgerByParty retrieves a party's full history, partitioned into current
// entries and archived old records, each in insertion order.
func (r *PgxLedgerRepository) FindLedgerByParty(ctx context.Context, partyID string) (*domain.LedgerPayload, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE party_id = $1
		ORDER BY created_at, entry_id;
	`
	rows, err := r.pool.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger for party %s: %w", partyID, err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TransactionEntry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}

	payload := &domain.LedgerPayload{
		LedgerEntries: make([]domain.TransactionEntry, 0, len(entries)),
		OldRecords:    []domain.TransactionEntry{},
	}
	for _, e := range entries {
		if e.IsOldRecord {
			payload.OldRecords = append(payload.OldRecords, e)
		} else {
			payload.LedgerEntries = append(payload.LedgerEntries, e)
		}
	}
	return payload, nil
}

// SaveEntry persists a new entry, computing its running balance from the
// party's latest current entry inside one transaction.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.TransactionEntry) (*domain.TransactionEntry, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var lastBalance decimal.Decimal
	err = tx.QueryRow(ctx, `
		SELECT balance FROM ledger_entries
		WHERE party_id = $1 AND NOT is_old_record
		ORDER BY created_at DESC, entry_id DESC
		LIMIT 1;
	`, entry.PartyID).Scan(&lastBalance)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to read last balance for party %s: %w", entry.PartyID, err)
	}

	entry.Balance = lastBalance.Add(entry.Credit).Sub(entry.Debit)
	entry.IsOldRecord = false
	entry.IsOptimistic = false

	query := `
		INSERT INTO ledger_entries (entry_id, party_id, entry_date, credit, debit, balance, entry_type, remarks, party_name, transaction_party_name, is_old_record, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		entry.EntryID,
		entry.PartyID,
		entry.Date,
		entry.Credit,
		entry.Debit,
		entry.Balance,
		entry.Type,
		entry.Remarks,
		entry.PartyName,
		entry.TransactionPartyName,
		entry.IsOldRecord,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save entry for party %s: %w", entry.PartyID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit entry for party %s: %w", entry.PartyID, err)
	}
	return &entry, nil
}

// DeleteEntries removes the entries with the given identities.
func (r *PgxLedgerRepository) DeleteEntries(ctx context.Context, partyID string, entryIDs []string) error {
	if len(entryIDs) == 0 {
		return nil
	}
	query := `
		DELETE FROM ledger_entries
		WHERE party_id = $1 AND entry_id = ANY($2);
	`
	_, err := r.pool.Exec(ctx, query, partyID, entryIDs)
	if err != nil {
		return fmt.Errorf("failed to delete entries for party %s: %w", partyID, err)
	}
	return nil
}

// ArchiveEntries moves a party's current entries into the old-records
// partition.
func (r *PgxLedgerRepository) ArchiveEntries(ctx context.Context, partyID string, userID string) error {
	query := `
		UPDATE ledger_entries SET
			is_old_record = TRUE,
			last_updated_at = $3,
			last_updated_by = $2
		WHERE party_id = $1 AND NOT is_old_record;
	`
	_, err := r.pool.Exec(ctx, query, partyID, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to archive entries for party %s: %w", partyID, err)
	}
	return nil
}
