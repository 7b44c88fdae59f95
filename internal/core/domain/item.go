package domain

import "github.com/shopspring/decimal"

// Item is one tradeable scrap material with its current per-unit price list.
// BuyPrice is what the shop pays sellers per unit; SellPrice is what buyers
// pay the shop.
type Item struct {
	ItemID    string          `json:"itemID"`
	BranchID  string          `json:"branchID"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"` // e.g. kg, pc
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}
