package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	"github.com/scrapline/junkshop_backoffice/internal/models"
	"github.com/scrapline/junkshop_backoffice/internal/utils/mapping"
)

type PgxPartyRepository struct {
	BaseRepository
}

// NewPartyRepository creates a new repository for counterparty data.
func NewPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `party_id, type, name, contact, address, branch_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanParty(row pgx.Row, m *models.Party) error {
	return row.Scan(
		&m.PartyID,
		&m.Type,
		&m.Name,
		&m.Contact,
		&m.Address,
		&m.BranchID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1;`

	var m models.Party
	if err := scanParty(r.Pool.QueryRow(ctx, query, partyID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find party by ID "+partyID, err)
	}

	party := mapping.ToDomainParty(m)
	return &party, nil
}

// FindPartyByName resolves a party of one type by exact, case-insensitive name.
func (r *PgxPartyRepository) FindPartyByName(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE type = $1 AND LOWER(name) = LOWER($2);`

	var m models.Party
	if err := scanParty(r.Pool.QueryRow(ctx, query, string(partyType), name), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find "+string(partyType)+" by name "+name, err)
	}

	party := mapping.ToDomainParty(m)
	return &party, nil
}

// ListPartiesByType retrieves all active parties of one type for a branch.
func (r *PgxPartyRepository) ListPartiesByType(ctx context.Context, branchID string, partyType domain.PartyType) ([]domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE branch_id = $1 AND type = $2 AND is_active ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, branchID, string(partyType))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query parties for branch "+branchID, err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		var m models.Party
		if err := scanParty(rows, &m); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party row for branch "+branchID, err)
		}
		parties = append(parties, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party rows for branch "+branchID, err)
	}
	return mapping.ToDomainPartySlice(parties), nil
}

// SaveParty persists a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartyID,
		m.Type,
		m.Name,
		m.Contact,
		m.Address,
		m.BranchID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert party "+m.PartyID, err)
	}
	return nil
}

// UpdateParty updates mutable party fields.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		UPDATE parties
		SET name = $2, contact = $3, address = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE party_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.PartyID,
		m.Name,
		m.Contact,
		m.Address,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update party "+m.PartyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("party " + m.PartyID + " not found for update")
	}
	return nil
}
