package repositories

import (
	"context"
	"time"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a specific shift by its unique identifier.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindActiveShiftByBranch retrieves the open shift for a branch, if any.
	// Returns apperrors.ErrNotFound when the branch has no open shift.
	FindActiveShiftByBranch(ctx context.Context, branchID string) (*domain.Shift, error)

	// FindActiveShift retrieves the open shift for a (branch, user) pair.
	FindActiveShift(ctx context.Context, branchID, userID string) (*domain.Shift, error)

	// ListActiveShiftsByUser retrieves all open shifts for a user joined with
	// branch name and location for display.
	ListActiveShiftsByUser(ctx context.Context, userID string) ([]domain.ActiveShiftView, error)

	// ListShiftsByBranch retrieves the shift history for a branch, newest first.
	ListShiftsByBranch(ctx context.Context, branchID string, limit int) ([]domain.Shift, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	// SaveShift persists a newly opened shift.
	SaveShift(ctx context.Context, shift domain.Shift) error

	// CloseShift sets the end timestamp and final cash of a shift. Both become
	// immutable afterwards; the update only applies while end_time IS NULL.
	CloseShift(ctx context.Context, shiftID string, endTime time.Time, finalCash decimal.Decimal) error

	// AddCapital atomically increments a shift's added_capital and inserts the
	// capital_addition audit transaction in one database transaction. Returns
	// the cumulative added_capital after the increment.
	AddCapital(ctx context.Context, shiftID string, amount decimal.Decimal, audit domain.Transaction) (decimal.Decimal, error)
}

// ShiftRepositoryFacade combines all shift-related repository interfaces
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
}

// ShiftRepositoryWithTx extends ShiftRepositoryFacade with transaction capabilities
type ShiftRepositoryWithTx interface {
	ShiftRepositoryFacade
	TransactionManager
}
