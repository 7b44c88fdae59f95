package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
	"github.com/scrapline/junkshop_backoffice/internal/middleware"
	"github.com/scrapline/junkshop_backoffice/internal/utils/accounting"
)

var (
	ErrItemsRequired = fmt.Errorf("%w: at least one line item is required", apperrors.ErrValidation)
)

// ledgerService records monetary transactions against the caller's active
// shift and mutates the shift's running total according to the per-type sign
// rules. Every write path couples the transaction insert with the shift update
// inside one database transaction.
type ledgerService struct {
	txnRepo  portsrepo.TransactionRepositoryFacade
	shiftSvc portssvc.ShiftSvcFacade
	partySvc portssvc.PartySvcFacade
	clock    domain.Clock
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, shiftSvc portssvc.ShiftSvcFacade, partySvc portssvc.PartySvcFacade, clock domain.Clock) portssvc.LedgerSvcFacade {
	return &ledgerService{
		txnRepo:  txnRepo,
		shiftSvc: shiftSvc,
		partySvc: partySvc,
		clock:    clock,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// resolveShiftID resolves the active shift for the actor. Non-owner actors
// must have an open shift; owners may record transactions with no shift
// reference at all.
func (s *ledgerService) resolveShiftID(ctx context.Context, branchID, userID, userType string) (*string, error) {
	shift, err := s.shiftSvc.GetActiveShift(ctx, branchID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if domain.UserType(userType).IsOwner() {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: open a shift before recording transactions", apperrors.ErrNoActiveShift)
		}
		return nil, fmt.Errorf("failed to resolve active shift: %w", err)
	}
	return &shift.ShiftID, nil
}

func defaultPaymentMethod(method string) domain.PaymentMethod {
	if method == "" {
		return domain.PaymentCash
	}
	return domain.PaymentMethod(method)
}

func defaultStatus(status string) domain.TransactionStatus {
	if status == "" {
		return domain.StatusCompleted
	}
	return domain.TransactionStatus(status)
}

// RecordExpense records an expense; running_total increases by the amount.
func (s *ledgerService) RecordExpense(ctx context.Context, req dto.RecordExpenseRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	shiftID, err := s.resolveShiftID(ctx, req.BranchID, req.UserID, req.UserType)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BranchID:        req.BranchID,
		ShiftID:         shiftID,
		PartyType:       domain.PartyNone,
		UserID:          req.UserID,
		Type:            domain.TxnExpense,
		TransactionDate: s.shiftSvc.ResolveTransactionDate(ctx, req.UserID, req.BranchID),
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   defaultPaymentMethod(req.PaymentMethod),
		Status:          domain.StatusCompleted,
		Notes:           req.Notes,
		CreatedAt:       s.clock.Now(),
	}

	delta, err := accounting.RunningTotalDelta(txn.Type, txn.TotalAmount, txn.Status)
	if err != nil {
		return nil, err
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn, nil, delta); err != nil {
		return nil, err
	}

	logger.Info("Expense recorded", slog.String("transaction_id", txn.TransactionID), slog.String("amount", txn.TotalAmount.String()))
	return &txn, nil
}

// RecordLoan records a loan to an employee or seller; running_total increases
// by the amount until it is repaid.
func (s *ledgerService) RecordLoan(ctx context.Context, req dto.RecordLoanRequest) (*domain.Transaction, error) {
	return s.recordPartyLedgerEntry(ctx, req, domain.TxnLoan)
}

// RecordRepayment reverses a loan's effect on the running total.
func (s *ledgerService) RecordRepayment(ctx context.Context, req dto.RecordLoanRequest) (*domain.Transaction, error) {
	return s.recordPartyLedgerEntry(ctx, req, domain.TxnRepayment)
}

func (s *ledgerService) recordPartyLedgerEntry(ctx context.Context, req dto.RecordLoanRequest, txnType domain.TransactionType) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.partySvc.FindPartyByName(ctx, domain.PartyType(req.PartyType), req.PartyName)
	if err != nil {
		return nil, err
	}

	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: %s amount must be positive", apperrors.ErrValidation, txnType)
	}

	shiftID, err := s.resolveShiftID(ctx, req.BranchID, req.UserID, req.UserType)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BranchID:        req.BranchID,
		ShiftID:         shiftID,
		PartyType:       party.Type,
		UserID:          req.UserID,
		Type:            txnType,
		TransactionDate: s.shiftSvc.ResolveTransactionDate(ctx, req.UserID, req.BranchID),
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   defaultPaymentMethod(req.PaymentMethod),
		Status:          domain.StatusCompleted,
		Notes:           req.Notes,
		CreatedAt:       s.clock.Now(),
	}
	switch party.Type {
	case domain.PartyEmployee:
		txn.EmployeeID = &party.PartyID
	case domain.PartySeller:
		txn.SellerID = &party.PartyID
	}

	delta, err := accounting.RunningTotalDelta(txn.Type, txn.TotalAmount, txn.Status)
	if err != nil {
		return nil, err
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn, nil, delta); err != nil {
		return nil, err
	}

	logger.Info("Party ledger entry recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txnType)),
		slog.String("party_id", party.PartyID),
	)
	return &txn, nil
}

// RecordSale records a sale with its line items; running_total decreases by
// the total amount (cash comes into the drawer).
func (s *ledgerService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, ErrItemsRequired
	}

	shiftID, err := s.resolveShiftID(ctx, req.BranchID, req.UserID, req.UserType)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BranchID:        req.BranchID,
		ShiftID:         shiftID,
		BuyerID:         req.BuyerID,
		PartyType:       domain.PartyType(req.PartyType),
		UserID:          req.UserID,
		Type:            domain.TxnSale,
		TransactionDate: s.shiftSvc.ResolveTransactionDate(ctx, req.UserID, req.BranchID),
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   defaultPaymentMethod(req.PaymentMethod),
		Status:          defaultStatus(req.Status),
		Notes:           req.Notes,
		CreatedAt:       s.clock.Now(),
	}
	items := s.buildLineItems(txn.TransactionID, req.Items)

	delta, err := accounting.RunningTotalDelta(txn.Type, txn.TotalAmount, txn.Status)
	if err != nil {
		return nil, err
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn, items, delta); err != nil {
		return nil, err
	}

	logger.Info("Sale recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.Int("line_items", len(items)),
		slog.String("amount", txn.TotalAmount.String()),
	)
	return &txn, nil
}

// RecordPurchase records a purchase with its line items. Only a completed
// purchase increases the running total; a pending one does not yet affect cash.
func (s *ledgerService) RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, ErrItemsRequired
	}

	shiftID, err := s.resolveShiftID(ctx, req.BranchID, req.UserID, req.UserType)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BranchID:        req.BranchID,
		ShiftID:         shiftID,
		SellerID:        req.SellerID,
		PartyType:       domain.PartyType(req.PartyType),
		UserID:          req.UserID,
		Type:            domain.TxnPurchase,
		TransactionDate: s.shiftSvc.ResolveTransactionDate(ctx, req.UserID, req.BranchID),
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   defaultPaymentMethod(req.PaymentMethod),
		Status:          defaultStatus(req.Status),
		Notes:           req.Notes,
		CreatedAt:       s.clock.Now(),
	}
	items := s.buildLineItems(txn.TransactionID, req.Items)

	delta, err := accounting.RunningTotalDelta(txn.Type, txn.TotalAmount, txn.Status)
	if err != nil {
		return nil, err
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn, items, delta); err != nil {
		return nil, err
	}

	logger.Info("Purchase recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.Int("line_items", len(items)),
		slog.String("status", string(txn.Status)),
	)
	return &txn, nil
}

func (s *ledgerService) buildLineItems(transactionID string, reqs []dto.TransactionItemRequest) []domain.TransactionItem {
	items := make([]domain.TransactionItem, len(reqs))
	for i, r := range reqs {
		lineID := uuid.NewString()
		if r.LineID != nil && *r.LineID != "" {
			lineID = *r.LineID
		}
		items[i] = domain.TransactionItem{
			LineID:        lineID,
			TransactionID: transactionID,
			ItemID:        r.ItemID,
			Quantity:      r.Quantity,
			UnitPrice:     r.UnitPrice,
			Subtotal:      r.Subtotal,
		}
	}
	return items
}

// UpdateTransaction applies a partial update to a recorded transaction. A
// supplied totalAmount is a DELTA that accumulates onto the stored amount, and
// the owning shift's running total moves by the same signed delta. The
// transaction date is always rewritten; line items are upserted by line id.
func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if existing.ShiftID == nil && !domain.UserType(req.UserType).IsOwner() {
		return fmt.Errorf("%w: transaction has no owning shift", apperrors.ErrNoActiveShift)
	}

	// A completed transaction never reverts to pending.
	if req.Status != nil && existing.Status == domain.StatusCompleted && domain.TransactionStatus(*req.Status) == domain.StatusPending {
		return fmt.Errorf("%w: completed transactions cannot revert to pending", apperrors.ErrValidation)
	}

	update := domain.TransactionUpdate{
		AmountDelta:     req.TotalAmount,
		Notes:           req.Notes,
		TransactionDate: s.shiftSvc.ResolveTransactionDate(ctx, existing.UserID, existing.BranchID),
	}
	if req.PaymentMethod != nil {
		method := domain.PaymentMethod(*req.PaymentMethod)
		update.PaymentMethod = &method
	}
	if req.Status != nil {
		status := domain.TransactionStatus(*req.Status)
		update.Status = &status
	}

	effectiveStatus := existing.Status
	if update.Status != nil {
		effectiveStatus = *update.Status
	}

	delta := decimal.Zero
	if req.TotalAmount != nil {
		delta, err = accounting.RunningTotalDelta(existing.Type, *req.TotalAmount, effectiveStatus)
		if err != nil {
			return err
		}
	}

	items := s.buildLineItems(transactionID, req.Items)
	if err := s.txnRepo.UpdateTransaction(ctx, transactionID, update, items, delta); err != nil {
		return err
	}

	logger.Info("Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.String("running_total_delta", delta.String()),
	)
	return nil
}

// GetTransaction retrieves a transaction together with its line items.
func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, []domain.TransactionItem, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.txnRepo.FindItemsByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, nil, err
	}
	return txn, items, nil
}

// ListTransactionsByBranch retrieves a paginated transaction listing for a branch.
func (s *ledgerService) ListTransactionsByBranch(ctx context.Context, branchID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	txns, nextToken, err := s.txnRepo.ListTransactionsByBranch(ctx, branchID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListTransactionsResponse(txns, nextToken)
	return &resp, nil
}

// ListTransactionsByShift retrieves every transaction of one shift.
func (s *ledgerService) ListTransactionsByShift(ctx context.Context, shiftID string) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactionsByShift(ctx, shiftID)
}
