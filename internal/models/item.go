package models

import "github.com/shopspring/decimal"

// Item mirrors the items table, carrying the current price list entry.
type Item struct {
	ItemID    string          `json:"itemID"`
	BranchID  string          `json:"branchID"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}
