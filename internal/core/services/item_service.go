package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
)

type itemService struct {
	itemRepo portsrepo.ItemRepositoryFacade
	clock    domain.Clock
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade, clock domain.Clock) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo, clock: clock}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error) {
	if req.BuyPrice.IsNegative() || req.SellPrice.IsNegative() {
		return nil, fmt.Errorf("%w: prices must not be negative", apperrors.ErrValidation)
	}

	now := s.clock.Now()
	item := domain.Item{
		ItemID:    uuid.NewString(),
		BranchID:  req.BranchID,
		Name:      req.Name,
		Unit:      req.Unit,
		BuyPrice:  req.BuyPrice,
		SellPrice: req.SellPrice,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	return s.itemRepo.FindItemByID(ctx, itemID)
}

func (s *itemService) ListItems(ctx context.Context, branchID string) ([]domain.Item, error) {
	return s.itemRepo.ListItemsByBranch(ctx, branchID)
}

func (s *itemService) UpdatePrices(ctx context.Context, itemID string, req dto.UpdatePricesRequest, updaterUserID string) (*domain.Item, error) {
	if req.BuyPrice.IsNegative() || req.SellPrice.IsNegative() {
		return nil, fmt.Errorf("%w: prices must not be negative", apperrors.ErrValidation)
	}

	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.UpdatePrices(ctx, itemID, req.BuyPrice, req.SellPrice, updaterUserID); err != nil {
		return nil, err
	}

	item.BuyPrice = req.BuyPrice
	item.SellPrice = req.SellPrice
	item.LastUpdatedAt = s.clock.Now()
	item.LastUpdatedBy = updaterUserID
	return item, nil
}
