package services

import (
	"context"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
)

// LedgerWriterSvc defines the transaction-recording operations. Every write
// couples the transaction insert with the owning shift's running-total update
// in one database transaction.
type LedgerWriterSvc interface {
	// RecordExpense records an expense against the caller's active shift.
	RecordExpense(ctx context.Context, req dto.RecordExpenseRequest) (*domain.Transaction, error)

	// RecordLoan records a loan to an employee or seller resolved by name.
	RecordLoan(ctx context.Context, req dto.RecordLoanRequest) (*domain.Transaction, error)

	// RecordRepayment records a loan repayment, reversing the loan's effect.
	RecordRepayment(ctx context.Context, req dto.RecordLoanRequest) (*domain.Transaction, error)

	// RecordSale records a sale with its line items.
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.Transaction, error)

	// RecordPurchase records a purchase with its line items. Only a completed
	// purchase affects the running total.
	RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update; a supplied totalAmount
	// accumulates onto the stored amount and the owning shift is adjusted by
	// the same delta.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) error
}

// LedgerReaderSvc defines read operations for recorded transactions
type LedgerReaderSvc interface {
	// GetTransaction retrieves a transaction together with its line items.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, []domain.TransactionItem, error)

	// ListTransactionsByBranch retrieves a paginated transaction listing.
	ListTransactionsByBranch(ctx context.Context, branchID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListTransactionsByShift retrieves every transaction of one shift.
	ListTransactionsByShift(ctx context.Context, shiftID string) ([]domain.Transaction, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
