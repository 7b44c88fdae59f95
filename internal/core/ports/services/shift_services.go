package services

import (
	"context"
	"time"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
)

// ShiftReaderSvc defines read operations for shift data
type ShiftReaderSvc interface {
	// GetShiftByID retrieves a specific shift by its ID.
	GetShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// GetActiveShiftsForUser retrieves the user's open shifts joined with branch details.
	GetActiveShiftsForUser(ctx context.Context, userID string) ([]domain.ActiveShiftView, error)

	// ListShiftsByBranch retrieves the shift history for a branch, newest first.
	ListShiftsByBranch(ctx context.Context, branchID string, limit int) ([]domain.Shift, error)

	// GetActiveShift resolves the open shift for a (branch, user) pair.
	// Returns apperrors.ErrNotFound when the pair has no open shift.
	GetActiveShift(ctx context.Context, branchID, userID string) (*domain.Shift, error)

	// ResolveTransactionDate derives the date to stamp on a new transaction for
	// the caller's active shift: the current timestamp when the shift started
	// today, otherwise the shift's start calendar date combined with the current
	// time-of-day. Falls back to the current timestamp when no active shift is
	// found or the lookup fails.
	ResolveTransactionDate(ctx context.Context, userID, branchID string) time.Time
}

// ShiftWriterSvc defines lifecycle operations for shifts
type ShiftWriterSvc interface {
	// OpenShift opens a new shift for a (branch, user) pair. Fails with
	// apperrors.ErrConflict when the branch already has an open shift.
	OpenShift(ctx context.Context, req dto.OpenShiftRequest) (*domain.Shift, error)

	// CloseShift computes final cash and stamps the end timestamp. Terminal;
	// there is no reopen.
	CloseShift(ctx context.Context, shiftID string) (*dto.CloseShiftResponse, error)

	// AddCapital injects cash into an open shift's float, atomically recording
	// a capital_addition audit transaction alongside the counter increment.
	AddCapital(ctx context.Context, shiftID string, req dto.AddCapitalRequest) (*dto.AddCapitalResponse, error)
}

// ShiftSvcFacade combines all shift-related service interfaces
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftWriterSvc
}
