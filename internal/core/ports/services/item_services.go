package services

import (
	"context"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
)

// ItemSvcFacade defines CRUD operations for items and their price-list entries.
type ItemSvcFacade interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error)
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context, branchID string) ([]domain.Item, error)
	UpdatePrices(ctx context.Context, itemID string, req dto.UpdatePricesRequest, updaterUserID string) (*domain.Item, error)
}
