package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	"github.com/scrapline/junkshop_backoffice/internal/models"
	"github.com/scrapline/junkshop_backoffice/internal/utils/mapping"
	"github.com/scrapline/junkshop_backoffice/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new repository for transaction and line item data.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, branch_id, shift_id, buyer_id, seller_id, employee_id, party_type, user_id, type, transaction_date, total_amount, payment_method, status, notes, created_at`

func scanTransaction(row pgx.Row, m *models.Transaction) error {
	return row.Scan(
		&m.TransactionID,
		&m.BranchID,
		&m.ShiftID,
		&m.BuyerID,
		&m.SellerID,
		&m.EmployeeID,
		&m.PartyType,
		&m.UserID,
		&m.Type,
		&m.TransactionDate,
		&m.TotalAmount,
		&m.PaymentMethod,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
	)
}

// SaveTransaction inserts a transaction, its line items, and applies the
// running-total delta to the owning shift, all within one database
// transaction. A reader never observes the insert without the shift update.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, items []domain.TransactionItem, runningTotalDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	m := mapping.ToModelTransaction(txn)
	insertQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
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
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	if len(items) > 0 {
		batch := &pgx.Batch{}
		itemQuery := `
			INSERT INTO transaction_items (line_id, transaction_id, item_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6);
		`
		for _, item := range items {
			mi := mapping.ToModelTransactionItem(item)
			batch.Queue(itemQuery, mi.LineID, mi.TransactionID, mi.ItemID, mi.Quantity, mi.UnitPrice, mi.Subtotal)
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to execute line item batch for transaction "+m.TransactionID, err)
		}
	}

	if txn.ShiftID != nil && !runningTotalDelta.IsZero() {
		if err := applyRunningTotalDelta(ctx, tx, *txn.ShiftID, runningTotalDelta); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// applyRunningTotalDelta issues the single-statement atomic increment; two
// concurrent writers against the same shift serialize on the row without a
// separate SELECT-then-UPDATE race.
func applyRunningTotalDelta(ctx context.Context, tx pgx.Tx, shiftID string, delta decimal.Decimal) error {
	query := `
		UPDATE shifts
		SET running_total = running_total + $2
		WHERE shift_id = $1 AND end_time IS NULL;
	`
	cmdTag, err := tx.Exec(ctx, query, shiftID, delta)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update running total for shift "+shiftID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("shift " + shiftID + " not found or already closed")
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	var m models.Transaction
	if err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindItemsByTransactionID retrieves the line items of a transaction.
func (r *PgxTransactionRepository) FindItemsByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionItem, error) {
	query := `
		SELECT line_id, transaction_id, item_id, quantity, unit_price, subtotal
		FROM transaction_items
		WHERE transaction_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items for transaction "+transactionID, err)
	}
	defer rows.Close()

	items := []models.TransactionItem{}
	for rows.Next() {
		var m models.TransactionItem
		if err := rows.Scan(&m.LineID, &m.TransactionID, &m.ItemID, &m.Quantity, &m.UnitPrice, &m.Subtotal); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row for transaction "+transactionID, err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows for transaction "+transactionID, err)
	}
	return mapping.ToDomainTransactionItemSlice(items), nil
}

// ListTransactionsByShift retrieves every transaction of a shift, oldest first.
func (r *PgxTransactionRepository) ListTransactionsByShift(ctx context.Context, shiftID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE shift_id = $1 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for shift "+shiftID, err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := scanTransaction(rows, &m); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row for shift "+shiftID, err)
		}
		txns = append(txns, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows for shift "+shiftID, err)
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// ListTransactionsByBranch retrieves a paginated list of transactions for a
// branch using token-based pagination ordered by (transaction_date, created_at).
func (r *PgxTransactionRepository) ListTransactionsByBranch(ctx context.Context, branchID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE branch_id = $1`
	orderByClause := `ORDER BY transaction_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{branchID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `AND (transaction_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for branch "+branchID, err)
	}
	defer rows.Close()

	txns := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		var m models.Transaction
		if err := scanTransaction(rows, &m); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row for branch "+branchID, err)
		}
		txns = append(txns, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows for branch "+branchID, err)
	}

	var nextTokenVal *string
	results := txns
	if len(txns) > limit {
		lastTxn := txns[limit-1]
		token := pagination.EncodeToken(lastTxn.TransactionDate, lastTxn.CreatedAt)
		nextTokenVal = &token
		results = txns[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// SumAmountByShift sums total_amount of one transaction type scoped to a shift.
func (r *PgxTransactionRepository) SumAmountByShift(ctx context.Context, shiftID string, txnType domain.TransactionType, completedOnly bool) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM transactions
		WHERE shift_id = $1 AND type = $2
	`
	args := []interface{}{shiftID, string(txnType)}
	if completedOnly {
		query += ` AND status = $3`
		args = append(args, string(domain.StatusCompleted))
	}

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum "+string(txnType)+" amounts for shift "+shiftID, err)
	}
	return sum, nil
}

// UpdateTransaction applies a partial update to a transaction. The amount
// delta ACCUMULATES onto total_amount, line items are upserted by line id, and
// the owning shift's running_total moves by runningTotalDelta, all within one
// database transaction. Unset fields keep their stored values via COALESCE.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, update domain.TransactionUpdate, items []domain.TransactionItem, runningTotalDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	var paymentMethod, status, notes *string
	if update.PaymentMethod != nil {
		v := string(*update.PaymentMethod)
		paymentMethod = &v
	}
	if update.Status != nil {
		v := string(*update.Status)
		status = &v
	}
	notes = update.Notes

	updateQuery := `
		UPDATE transactions
		SET total_amount = total_amount + COALESCE($2, 0),
		    payment_method = COALESCE($3, payment_method),
		    status = COALESCE($4, status),
		    notes = COALESCE($5, notes),
		    transaction_date = $6
		WHERE transaction_id = $1
		RETURNING shift_id;
	`
	var shiftID *string
	err = tx.QueryRow(ctx, updateQuery,
		transactionID,
		update.AmountDelta,
		paymentMethod,
		status,
		notes,
		update.TransactionDate,
	).Scan(&shiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("transaction " + transactionID + " not found for update")
		}
		return apperrors.NewAppError(500, "failed to update transaction "+transactionID, err)
	}

	for _, item := range items {
		mi := mapping.ToModelTransactionItem(item)
		itemUpdateQuery := `
			UPDATE transaction_items
			SET item_id = $3, quantity = $4, unit_price = $5, subtotal = $6
			WHERE line_id = $1 AND transaction_id = $2;
		`
		cmdTag, err := tx.Exec(ctx, itemUpdateQuery, mi.LineID, mi.TransactionID, mi.ItemID, mi.Quantity, mi.UnitPrice, mi.Subtotal)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update line item "+mi.LineID+" for transaction "+transactionID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			itemInsertQuery := `
				INSERT INTO transaction_items (line_id, transaction_id, item_id, quantity, unit_price, subtotal)
				VALUES ($1, $2, $3, $4, $5, $6);
			`
			if _, err := tx.Exec(ctx, itemInsertQuery, mi.LineID, mi.TransactionID, mi.ItemID, mi.Quantity, mi.UnitPrice, mi.Subtotal); err != nil {
				return apperrors.NewAppError(500, "failed to insert line item "+mi.LineID+" for transaction "+transactionID, err)
			}
		}
	}

	if shiftID != nil && !runningTotalDelta.IsZero() {
		if err := applyRunningTotalDelta(ctx, tx, *shiftID, runningTotalDelta); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}
