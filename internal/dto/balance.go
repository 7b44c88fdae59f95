package dto

import "github.com/shopspring/decimal"

// BalanceResponse reports one summed balance scoped to the caller's active shift.
type BalanceResponse struct {
	BranchID string          `json:"branchID"`
	UserID   string          `json:"userID"`
	Total    decimal.Decimal `json:"total"`
}

// CashBalanceResponse reports the derived cash-on-hand of the active shift.
// All fields are zero-valued when the caller has no active shift.
type CashBalanceResponse struct {
	ShiftID      string          `json:"shiftID,omitempty"`
	InitialCash  decimal.Decimal `json:"initialCash"`
	AddedCapital decimal.Decimal `json:"addedCapital"`
	RunningTotal decimal.Decimal `json:"runningTotal"`
	CashBalance  decimal.Decimal `json:"cashBalance"`
}

// BalanceParams defines query parameters shared by the balance endpoints.
type BalanceParams struct {
	BranchID string `form:"branchID" binding:"required"`
	UserID   string `form:"userID" binding:"required"`
}
