package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hisabline/party_ledger_app/internal/apperrors"
	"github.com/hisabline/party_ledger_app/internal/core/domain"
	portsrepo "github.com/hisabline/party_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPartyRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPartyRepository creates a new repository for party data.
func NewPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyDirectoryFacade {
	return &PgxPartyRepository{pool: pool}
}

var _ portsrepo.PartyDirectoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `party_id, name, company_name, status, m_commission, rate, commi_system, monday_final, sr_no, created_at, created_by, last_updated_at, last_updated_by`

func scanParty(row pgx.Row) (domain.Party, error) {
	var p domain.Party
	err := row.Scan(
		&p.PartyID,
		&p.Name,
		&p.CompanyName,
		&p.Status,
		&p.MCommission,
		&p.Rate,
		&p.CommiSystem,
		&p.MondayFinal,
		&p.SrNo,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// FindAllParties retrieves every party record ordered by serial number.
func (r *PgxPartyRepository) FindAllParties(ctx context.Context) ([]domain.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		ORDER BY sr_no, name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Party, error) {
		return scanParty(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan parties: %w", err)
	}

	return parties, nil
}

// FindPartyByID retrieves a specific party.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE party_id = $1;
	`
	p, err := scanParty(r.pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party by id %s: %w", partyID, err)
	}

	return &p, nil
}

// SaveParty persists a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	query := `
		INSERT INTO parties (party_id, name, company_name, status, m_commission, rate, commi_system, monday_final, sr_no, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		party.PartyID,
		party.Name,
		party.CompanyName,
		party.Status,
		party.MCommission,
		party.Rate,
		party.CommiSystem,
		party.MondayFinal,
		party.SrNo,
		party.CreatedAt,
		party.CreatedBy,
		party.LastUpdatedAt,
		party.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save party %s: %w", party.Name, err)
	}
	return nil
}

// UpdateParty updates an existing party's details.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	query := `
		UPDATE parties SET
			name = $2,
			company_name = $3,
			status = $4,
			m_commission = $5,
			rate = $6,
			commi_system = $7,
			monday_final = $8,
			sr_no = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE party_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		party.PartyID,
		party.Name,
		party.CompanyName,
		party.Status,
		party.MCommission,
		party.Rate,
		party.CommiSystem,
		party.MondayFinal,
		party.SrNo,
		party.LastUpdatedAt,
		party.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update party %s: %w", party.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteParty removes a party and its ledger entries.
func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE party_id = $1;`, partyID); err != nil {
		return fmt.Errorf("failed to delete ledger entries for party %s: %w", partyID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM parties WHERE party_id = $1;`, partyID)
	if err != nil {
		return fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for party %s: %w", partyID, err)
	}
	return nil
}
