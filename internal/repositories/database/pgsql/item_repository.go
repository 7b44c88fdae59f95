package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	"github.com/scrapline/junkshop_backoffice/internal/models"
	"github.com/scrapline/junkshop_backoffice/internal/utils/mapping"
)

type PgxItemRepository struct {
	BaseRepository
}

// NewItemRepository creates a new repository for item and price-list data.
func NewItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

const itemColumns = `item_id, branch_id, name, unit, buy_price, sell_price, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanItem(row pgx.Row, m *models.Item) error {
	return row.Scan(
		&m.ItemID,
		&m.BranchID,
		&m.Name,
		&m.Unit,
		&m.BuyPrice,
		&m.SellPrice,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

// FindItemByID retrieves an item by its ID.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1;`

	var m models.Item
	if err := scanItem(r.Pool.QueryRow(ctx, query, itemID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find item by ID "+itemID, err)
	}

	item := mapping.ToDomainItem(m)
	return &item, nil
}

// ListItemsByBranch retrieves all active items for a branch.
func (r *PgxItemRepository) ListItemsByBranch(ctx context.Context, branchID string) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE branch_id = $1 AND is_active ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, branchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for branch "+branchID, err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var m models.Item
		if err := scanItem(rows, &m); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row for branch "+branchID, err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating item rows for branch "+branchID, err)
	}
	return mapping.ToDomainItemSlice(items), nil
}

// SaveItem persists a new item.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.BranchID,
		m.Name,
		m.Unit,
		m.BuyPrice,
		m.SellPrice,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert item "+m.ItemID, err)
	}
	return nil
}

// UpdatePrices rewrites the price-list entry of an item.
func (r *PgxItemRepository) UpdatePrices(ctx context.Context, itemID string, buyPrice, sellPrice decimal.Decimal, updatedBy string) error {
	query := `
		UPDATE items
		SET buy_price = $2, sell_price = $3, last_updated_at = $4, last_updated_by = $5
		WHERE item_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, itemID, buyPrice, sellPrice, time.Now().UTC(), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update prices for item "+itemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item " + itemID + " not found for update")
	}
	return nil
}
