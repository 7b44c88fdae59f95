package accounting

import (
	"fmt"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunningTotalDelta returns the signed amount a transaction contributes to its
// owning shift's running total. The convention is used in both services and
// repositories to keep the ledger arithmetic in one place:
//
//	sale                 -> subtract totalAmount (cash comes in)
//	purchase (completed) -> add totalAmount (cash goes out)
//	purchase (pending)   -> no effect yet
//	expense              -> add totalAmount
//	loan                 -> add totalAmount (owed to the shift until repaid)
//	repayment            -> subtract totalAmount (reverses the loan)
//	capital_addition     -> no effect (tracked in added_capital instead)
func RunningTotalDelta(txnType domain.TransactionType, amount decimal.Decimal, status domain.TransactionStatus) (decimal.Decimal, error) {
	switch txnType {
	case domain.TxnSale:
		return amount.Neg(), nil
	case domain.TxnPurchase:
		if status == domain.StatusCompleted {
			return amount, nil
		}
		return decimal.Zero, nil
	case domain.TxnExpense, domain.TxnLoan:
		return amount, nil
	case domain.TxnRepayment:
		return amount.Neg(), nil
	case domain.TxnCapitalAddition:
		return decimal.Zero, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s'", txnType)
	}
}

// FinalCash computes the cash expected in the drawer when a shift closes.
// The formula is fixed: initial float, plus injected capital, minus the net
// running total accumulated over the shift.
func FinalCash(initialCash, addedCapital, runningTotal decimal.Decimal) decimal.Decimal {
	return initialCash.Add(addedCapital).Sub(runningTotal)
}
