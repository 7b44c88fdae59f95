package repositories

import (
	"context"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindItemsByTransactionID retrieves the line items of a transaction.
	FindItemsByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionItem, error)

	// ListTransactionsByShift retrieves every transaction recorded against a shift,
	// oldest first, for the close-of-day view.
	ListTransactionsByShift(ctx context.Context, shiftID string) ([]domain.Transaction, error)

	// ListTransactionsByBranch retrieves a paginated list of transactions for a
	// branch using token-based pagination. It returns the transactions, a token
	// for the next page, and an error.
	ListTransactionsByBranch(ctx context.Context, branchID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SumAmountByShift sums total_amount of transactions of the given type scoped
	// to one shift. When completedOnly is set, only status = completed rows count.
	SumAmountByShift(ctx context.Context, shiftID string, txnType domain.TransactionType, completedOnly bool) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a transaction and its line items and applies
	// runningTotalDelta to the owning shift's running_total, all within one
	// database transaction. A reader never observes the insert without the
	// shift update. A nil ShiftID skips the shift update (owner-recorded entry).
	SaveTransaction(ctx context.Context, txn domain.Transaction, items []domain.TransactionItem, runningTotalDelta decimal.Decimal) error

	// UpdateTransaction applies a partial update to a transaction. The amount
	// delta accumulates onto the stored total, line items are upserted by line
	// id, and the owning shift's running_total is adjusted by runningTotalDelta,
	// all within one database transaction. Returns apperrors.ErrNotFound when
	// the transaction row does not exist.
	UpdateTransaction(ctx context.Context, transactionID string, update domain.TransactionUpdate, items []domain.TransactionItem, runningTotalDelta decimal.Decimal) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
