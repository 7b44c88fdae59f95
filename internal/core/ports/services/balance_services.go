package services

import (
	"context"

	"github.com/scrapline/junkshop_backoffice/internal/dto"
	"github.com/shopspring/decimal"
)

// BalanceSvcFacade derives point-in-time balances scoped to the caller's
// active shift, resolved fresh on every call. All sums return zero when the
// caller has no active shift.
type BalanceSvcFacade interface {
	// GetExpenseBalance sums expense transactions of the active shift.
	GetExpenseBalance(ctx context.Context, branchID, userID string) (decimal.Decimal, error)

	// GetSaleBalance sums completed sale transactions of the active shift.
	GetSaleBalance(ctx context.Context, branchID, userID string) (decimal.Decimal, error)

	// GetPurchaseBalance sums completed purchase transactions of the active shift.
	GetPurchaseBalance(ctx context.Context, branchID, userID string) (decimal.Decimal, error)

	// GetCashBalance derives initial_cash + added_capital - running_total for
	// the active shift; zero-valued when there is none.
	GetCashBalance(ctx context.Context, branchID, userID string) (*dto.CashBalanceResponse, error)
}
