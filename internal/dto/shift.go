package dto

import (
	"time"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenShiftRequest defines the payload for opening a new shift.
type OpenShiftRequest struct {
	BranchID    string          `json:"branchID" binding:"required"`
	UserID      string          `json:"userID" binding:"required"`
	InitialCash decimal.Decimal `json:"initialCash"`
	Notes       string          `json:"notes"`
}

// AddCapitalRequest defines the payload for injecting capital into an open shift.
type AddCapitalRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	BranchID string          `json:"branchID" binding:"required"`
	UserID   string          `json:"userID" binding:"required"`
	Notes    string          `json:"notes"`
}

// AddCapitalResponse reports the shift's cumulative added capital after the injection.
type AddCapitalResponse struct {
	ShiftID      string          `json:"shiftID"`
	AddedCapital decimal.Decimal `json:"addedCapital"`
}

// CloseShiftResponse reports the computed final cash and end timestamp.
type CloseShiftResponse struct {
	ShiftID   string          `json:"shiftID"`
	FinalCash decimal.Decimal `json:"finalCash"`
	EndTime   time.Time       `json:"endTime"`
}

// ShiftResponse defines the data returned for a shift.
type ShiftResponse struct {
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
}

// ActiveShiftResponse is a ShiftResponse enriched with branch details for the
// operator-facing view.
type ActiveShiftResponse struct {
	ShiftResponse
	BranchName     string `json:"branchName"`
	BranchLocation string `json:"branchLocation"`
}

// ListShiftsResponse wraps the shift history of a branch.
type ListShiftsResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}

// ToShiftResponse converts a domain.Shift to ShiftResponse DTO.
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ShiftID:      s.ShiftID,
		BranchID:     s.BranchID,
		UserID:       s.UserID,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		InitialCash:  s.InitialCash,
		AddedCapital: s.AddedCapital,
		RunningTotal: s.RunningTotal,
		FinalCash:    s.FinalCash,
		Notes:        s.Notes,
	}
}

// ToActiveShiftResponse converts a domain.ActiveShiftView to its DTO.
func ToActiveShiftResponse(v *domain.ActiveShiftView) ActiveShiftResponse {
	return ActiveShiftResponse{
		ShiftResponse:  ToShiftResponse(&v.Shift),
		BranchName:     v.BranchName,
		BranchLocation: v.BranchLocation,
	}
}

// ToListShiftsResponse converts a slice of domain.Shift to ListShiftsResponse.
func ToListShiftsResponse(shifts []domain.Shift) ListShiftsResponse {
	responses := make([]ShiftResponse, len(shifts))
	for i, s := range shifts {
		responses[i] = ToShiftResponse(&s)
	}
	return ListShiftsResponse{Shifts: responses}
}
