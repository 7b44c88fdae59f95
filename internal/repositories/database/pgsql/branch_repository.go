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

type PgxBranchRepository struct {
	BaseRepository
}

// NewBranchRepository creates a new repository for branch data.
func NewBranchRepository(pool *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

const branchColumns = `branch_id, name, location, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanBranch(row pgx.Row, m *models.Branch) error {
	return row.Scan(
		&m.BranchID,
		&m.Name,
		&m.Location,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

// FindBranchByID retrieves a branch by its ID.
func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE branch_id = $1;`

	var m models.Branch
	if err := scanBranch(r.Pool.QueryRow(ctx, query, branchID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find branch by ID "+branchID, err)
	}

	branch := mapping.ToDomainBranch(m)
	return &branch, nil
}

// ListBranches retrieves all branches, optionally including inactive ones.
func (r *PgxBranchRepository) ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query branches", err)
	}
	defer rows.Close()

	branches := []models.Branch{}
	for rows.Next() {
		var m models.Branch
		if err := scanBranch(rows, &m); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan branch row", err)
		}
		branches = append(branches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating branch rows", err)
	}
	return mapping.ToDomainBranchSlice(branches), nil
}

// SaveBranch persists a new branch.
func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	m := mapping.ToModelBranch(branch)
	query := `
		INSERT INTO branches (` + branchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BranchID,
		m.Name,
		m.Location,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert branch "+m.BranchID, err)
	}
	return nil
}

// UpdateBranch updates mutable branch fields.
func (r *PgxBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	m := mapping.ToModelBranch(branch)
	query := `
		UPDATE branches
		SET name = $2, location = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE branch_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.BranchID,
		m.Name,
		m.Location,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update branch "+m.BranchID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("branch " + m.BranchID + " not found for update")
	}
	return nil
}
