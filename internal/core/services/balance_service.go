package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
	"github.com/scrapline/junkshop_backoffice/internal/utils/accounting"
)

// balanceService derives point-in-time balances scoped to the caller's active
// shift. The shift is resolved fresh on every call by the branchID/userID
// parameters of the call itself; there is no owner exemption on this read path.
type balanceService struct {
	shiftRepo portsrepo.ShiftRepositoryFacade
	txnRepo   portsrepo.TransactionRepositoryFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(shiftRepo portsrepo.ShiftRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.BalanceSvcFacade {
	return &balanceService{
		shiftRepo: shiftRepo,
		txnRepo:   txnRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) sumForActiveShift(ctx context.Context, branchID, userID string, txnType domain.TransactionType, completedOnly bool) (decimal.Decimal, error) {
	shift, err := s.shiftRepo.FindActiveShift(ctx, branchID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to resolve active shift: %w", err)
	}

	return s.txnRepo.SumAmountByShift(ctx, shift.ShiftID, txnType, completedOnly)
}

// GetExpenseBalance sums expense transactions of the caller's active shift.
func (s *balanceService) GetExpenseBalance(ctx context.Context, branchID, userID string) (decimal.Decimal, error) {
	return s.sumForActiveShift(ctx, branchID, userID, domain.TxnExpense, false)
}

// GetSaleBalance sums completed sale transactions of the caller's active shift.
func (s *balanceService) GetSaleBalance(ctx context.Context, branchID, userID string) (decimal.Decimal, error) {
	return s.sumForActiveShift(ctx, branchID, userID, domain.TxnSale, true)
}

// GetPurchaseBalance sums completed purchase transactions of the caller's active shift.
func (s *balanceService) GetPurchaseBalance(ctx context.Context, branchID, userID string) (decimal.Decimal, error) {
	return s.sumForActiveShift(ctx, branchID, userID, domain.TxnPurchase, true)
}

// GetCashBalance derives the active shift's cash on hand. A caller without an
// active shift gets a zero-valued response rather than an error.
func (s *balanceService) GetCashBalance(ctx context.Context, branchID, userID string) (*dto.CashBalanceResponse, error) {
	shift, err := s.shiftRepo.FindActiveShift(ctx, branchID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &dto.CashBalanceResponse{
				InitialCash:  decimal.Zero,
				AddedCapital: decimal.Zero,
				RunningTotal: decimal.Zero,
				CashBalance:  decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("failed to resolve active shift: %w", err)
	}

	return &dto.CashBalanceResponse{
		ShiftID:      shift.ShiftID,
		InitialCash:  shift.InitialCash,
		AddedCapital: shift.AddedCapital,
		RunningTotal: shift.RunningTotal,
		CashBalance:  accounting.FinalCash(shift.InitialCash, shift.AddedCapital, shift.RunningTotal),
	}, nil
}
