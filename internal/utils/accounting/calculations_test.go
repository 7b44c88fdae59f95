package accounting_test

import (
	"testing"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunningTotalDelta(t *testing.T) {
	amount := decimal.NewFromInt(100)

	testCases := []struct {
		name     string
		txnType  domain.TransactionType
		status   domain.TransactionStatus
		expected decimal.Decimal
	}{
		{"sale subtracts", domain.TxnSale, domain.StatusCompleted, amount.Neg()},
		{"completed purchase adds", domain.TxnPurchase, domain.StatusCompleted, amount},
		{"pending purchase has no effect", domain.TxnPurchase, domain.StatusPending, decimal.Zero},
		{"expense adds", domain.TxnExpense, domain.StatusCompleted, amount},
		{"loan adds", domain.TxnLoan, domain.StatusCompleted, amount},
		{"repayment subtracts", domain.TxnRepayment, domain.StatusCompleted, amount.Neg()},
		{"capital addition has no effect", domain.TxnCapitalAddition, domain.StatusCompleted, decimal.Zero},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			delta, err := accounting.RunningTotalDelta(tc.txnType, amount, tc.status)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(delta), "expected %s, got %s", tc.expected, delta)
		})
	}
}

func TestRunningTotalDeltaUnknownType(t *testing.T) {
	_, err := accounting.RunningTotalDelta("refund", decimal.NewFromInt(1), domain.StatusCompleted)
	assert.Error(t, err)
}

func TestFinalCash(t *testing.T) {
	// initial 1000, capital 500, running total -150 (a 200 sale then a 50 expense)
	got := accounting.FinalCash(decimal.NewFromInt(1000), decimal.NewFromInt(500), decimal.NewFromInt(-150))
	assert.True(t, decimal.NewFromInt(1650).Equal(got), "got %s", got)
}
