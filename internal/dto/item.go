package dto

import (
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest defines the payload for creating an item with its price-list entry.
type CreateItemRequest struct {
	BranchID  string          `json:"branchID" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Unit      string          `json:"unit" binding:"required"`
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
}

// UpdatePricesRequest defines the payload for rewriting an item's prices.
type UpdatePricesRequest struct {
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
}

// ItemResponse defines the data returned for an item.
type ItemResponse struct {
	ItemID    string          `json:"itemID"`
	BranchID  string          `json:"branchID"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	IsActive  bool            `json:"isActive"`
}

// ListItemsResponse wraps the price list of a branch.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts a domain.Item to ItemResponse DTO.
func ToItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:    item.ItemID,
		BranchID:  item.BranchID,
		Name:      item.Name,
		Unit:      item.Unit,
		BuyPrice:  item.BuyPrice,
		SellPrice: item.SellPrice,
		IsActive:  item.IsActive,
	}
}

// ToListItemsResponse converts a slice of domain.Item to ListItemsResponse.
func ToListItemsResponse(items []domain.Item) ListItemsResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(&item)
	}
	return ListItemsResponse{Items: responses}
}
