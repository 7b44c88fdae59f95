package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	"github.com/scrapline/junkshop_backoffice/internal/models"
	"github.com/scrapline/junkshop_backoffice/internal/utils/mapping"
)

type PgxShiftRepository struct {
	BaseRepository
}

// NewShiftRepository creates a new repository for shift data.
func NewShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryWithTx {
	return &PgxShiftRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ShiftRepositoryWithTx = (*PgxShiftRepository)(nil)

const shiftColumns = `shift_id, branch_id, user_id, start_time, end_time, initial_cash, added_capital, running_total, final_cash, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanShift(row pgx.Row, m *models.Shift) error {
	return row.Scan(
		&m.ShiftID,
		&m.BranchID,
		&m.UserID,
		&m.StartTime,
		&m.EndTime,
		&m.InitialCash,
		&m.AddedCapital,
		&m.RunningTotal,
		&m.FinalCash,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

// SaveShift persists a newly opened shift.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)
	query := `
		INSERT INTO shifts (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ShiftID,
		m.BranchID,
		m.UserID,
		m.StartTime,
		m.EndTime,
		m.InitialCash,
		m.AddedCapital,
		m.RunningTotal,
		m.FinalCash,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: the partial unique indexes on open shifts caught a concurrent open.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: branch or user already has an open shift", apperrors.ErrConflict)
		}
		return apperrors.NewAppError(500, "failed to insert shift "+m.ShiftID, err)
	}
	return nil
}

// FindShiftByID retrieves a shift by its ID.
func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1;`

	var m models.Shift
	if err := scanShift(r.Pool.QueryRow(ctx, query, shiftID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find shift by ID "+shiftID, err)
	}

	shift := mapping.ToDomainShift(m)
	return &shift, nil
}

// FindActiveShiftByBranch retrieves the open shift for a branch, if any.
func (r *PgxShiftRepository) FindActiveShiftByBranch(ctx context.Context, branchID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE branch_id = $1 AND end_time IS NULL LIMIT 1;`

	var m models.Shift
	if err := scanShift(r.Pool.QueryRow(ctx, query, branchID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find active shift for branch "+branchID, err)
	}

	shift := mapping.ToDomainShift(m)
	return &shift, nil
}

// FindActiveShift retrieves the open shift for a (branch, user) pair.
func (r *PgxShiftRepository) FindActiveShift(ctx context.Context, branchID, userID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE branch_id = $1 AND user_id = $2 AND end_time IS NULL LIMIT 1;`

	var m models.Shift
	if err := scanShift(r.Pool.QueryRow(ctx, query, branchID, userID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find active shift for branch "+branchID+" and user "+userID, err)
	}

	shift := mapping.ToDomainShift(m)
	return &shift, nil
}

// ListActiveShiftsByUser retrieves all open shifts of a user joined with
// branch name and location for the operator-facing view.
func (r *PgxShiftRepository) ListActiveShiftsByUser(ctx context.Context, userID string) ([]domain.ActiveShiftView, error) {
	query := `
		SELECT s.shift_id, s.branch_id, s.user_id, s.start_time, s.end_time, s.initial_cash, s.added_capital,
		       s.running_total, s.final_cash, s.notes, s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
		       b.name, b.location
		FROM shifts s
		JOIN branches b ON s.branch_id = b.branch_id
		WHERE s.user_id = $1 AND s.end_time IS NULL
		ORDER BY s.start_time DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query active shifts for user "+userID, err)
	}
	defer rows.Close()

	views := []domain.ActiveShiftView{}
	for rows.Next() {
		var m models.Shift
		err := rows.Scan(
			&m.ShiftID,
			&m.BranchID,
			&m.UserID,
			&m.StartTime,
			&m.EndTime,
			&m.InitialCash,
			&m.AddedCapital,
			&m.RunningTotal,
			&m.FinalCash,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.BranchName,
			&m.BranchLocation,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan active shift row for user "+userID, err)
		}
		views = append(views, mapping.ToDomainActiveShiftView(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating active shift rows for user "+userID, err)
	}
	return views, nil
}

// ListShiftsByBranch retrieves the shift history for a branch, newest first.
func (r *PgxShiftRepository) ListShiftsByBranch(ctx context.Context, branchID string, limit int) ([]domain.Shift, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE branch_id = $1 ORDER BY start_time DESC LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, branchID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query shifts for branch "+branchID, err)
	}
	defer rows.Close()

	shifts := []models.Shift{}
	for rows.Next() {
		var m models.Shift
		if err := scanShift(rows, &m); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan shift row for branch "+branchID, err)
		}
		shifts = append(shifts, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating shift rows for branch "+branchID, err)
	}
	return mapping.ToDomainShiftSlice(shifts), nil
}

// CloseShift stamps the end timestamp and final cash of an open shift. The
// guard on end_time IS NULL makes both immutable once set.
func (r *PgxShiftRepository) CloseShift(ctx context.Context, shiftID string, endTime time.Time, finalCash decimal.Decimal) error {
	query := `
		UPDATE shifts
		SET end_time = $2,
		    final_cash = $3,
		    last_updated_at = $2
		WHERE shift_id = $1 AND end_time IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, shiftID, endTime, finalCash)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close shift "+shiftID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("shift " + shiftID + " not found or already closed")
	}
	return nil
}

// AddCapital increments added_capital and inserts the capital_addition audit
// transaction in one database transaction. Partial application is never
// observable by a reader. Returns the cumulative added_capital the increment
// produced, so callers report the post-update value even when top-ups race.
func (r *PgxShiftRepository) AddCapital(ctx context.Context, shiftID string, amount decimal.Decimal, audit domain.Transaction) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	updateQuery := `
		UPDATE shifts
		SET added_capital = added_capital + $2,
		    last_updated_at = $3
		WHERE shift_id = $1 AND end_time IS NULL
		RETURNING added_capital;
	`
	var addedCapital decimal.Decimal
	if err := tx.QueryRow(ctx, updateQuery, shiftID, amount, audit.CreatedAt).Scan(&addedCapital); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.NewNotFoundError("shift " + shiftID + " not found or already closed")
		}
		return decimal.Zero, apperrors.NewAppError(500, "failed to add capital to shift "+shiftID, err)
	}

	m := mapping.ToModelTransaction(audit)
	insertQuery := `
		INSERT INTO transactions (
			transaction_id, branch_id, shift_id, buyer_id, seller_id, employee_id, party_type,
			user_id, type, transaction_date, total_amount, payment_method, status, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.BranchID,
		m.ShiftID,
		m.BuyerID,
		m.SellerID,
		m.EmployeeID,
		m.PartyType,
		m.UserID,
		m.Type,
		m.TransactionDate,
		m.TotalAmount,
		m.PaymentMethod,
		m.Status,
		m.Notes,
		m.CreatedAt,
	)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to insert capital addition transaction for shift "+shiftID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return addedCapital, nil
}
