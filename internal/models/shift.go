package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift mirrors the shifts table. EndTime and FinalCash stay NULL while the
// shift is active; running_total and added_capital are only ever mutated by
// atomic increments issued from the transaction repository.
type Shift struct {
	ShiftID      string           `json:"shiftID"`
	BranchID     string           `json:"branchID"`
	UserID       string           `json:"userID"`
	StartTime    time.Time        `json:"startTime"`
	EndTime      *time.Time       `json:"endTime"`
	InitialCash  decimal.Decimal  `json:"initialCash"`
	AddedCapital decimal.Decimal  `json:"addedCapital"`
	RunningTotal decimal.Decimal  `json:"runningTotal"`
	FinalCash    *decimal.Decimal `json:"finalCash"`
	Notes        string           `json:"notes"`
	AuditFields

	// Populated only by queries joining branches for the active-shift view.
	BranchName     string `json:"branchName,omitempty"`
	BranchLocation string `json:"branchLocation,omitempty"`
}
