package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift represents one cash-register session for a (branch, operator) pair.
// A nil EndTime means the shift is active; at most one active shift may exist
// per branch at any time.
type Shift struct {
	ShiftID      string           `json:"shiftID"`
	BranchID     string           `json:"branchID"`
	UserID       string           `json:"userID"`
	StartTime    time.Time        `json:"startTime"`
	EndTime      *time.Time       `json:"endTime,omitempty"`
	InitialCash  decimal.Decimal  `json:"initialCash"`
	AddedCapital decimal.Decimal  `json:"addedCapital"`
	RunningTotal decimal.Decimal  `json:"runningTotal"`
	FinalCash    *decimal.Decimal `json:"finalCash,omitempty"`
	Notes        string           `json:"notes"`
	AuditFields
}

// IsActive reports whether the shift is still open.
func (s Shift) IsActive() bool {
	return s.EndTime == nil
}

// ActiveShiftView is a Shift joined with its branch details for display.
type ActiveShiftView struct {
	Shift
	BranchName     string `json:"branchName"`
	BranchLocation string `json:"branchLocation"`
}
