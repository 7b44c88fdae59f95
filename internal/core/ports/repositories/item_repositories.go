package repositories

import (
	"context"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ItemReader defines read operations for item/price-list data
type ItemReader interface {
	// FindItemByID retrieves a specific item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItemsByBranch retrieves all active items for a branch.
	ListItemsByBranch(ctx context.Context, branchID string) ([]domain.Item, error)
}

// ItemWriter defines write operations for item/price-list data
type ItemWriter interface {
	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.Item) error

	// UpdatePrices rewrites the price-list entry of an item.
	UpdatePrices(ctx context.Context, itemID string, buyPrice, sellPrice decimal.Decimal, updatedBy string) error
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
