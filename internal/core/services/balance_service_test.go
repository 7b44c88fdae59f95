package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/core/services"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockShiftRepo *MockShiftRepository
	mockTxnRepo   *MockTransactionRepository
	service       portssvc.BalanceSvcFacade
	branchID      string
	userID        string
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewBalanceService(suite.mockShiftRepo, suite.mockTxnRepo)
	suite.branchID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *BalanceServiceTestSuite) TestGetExpenseBalance_IncludesPending() {
	ctx := context.Background()
	shift := &domain.Shift{ShiftID: uuid.NewString(), BranchID: suite.branchID, UserID: suite.userID}

	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(shift, nil).Once()
	suite.mockTxnRepo.On("SumAmountByShift", ctx, shift.ShiftID, domain.TxnExpense, false).Return(decimal.NewFromInt(230), nil).Once()

	sum, err := suite.service.GetExpenseBalance(ctx, suite.branchID, suite.userID)

	suite.Require().NoError(err)
	suite.True(sum.Equal(decimal.NewFromInt(230)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetSaleBalance_CompletedOnly() {
	ctx := context.Background()
	shift := &domain.Shift{ShiftID: uuid.NewString(), BranchID: suite.branchID, UserID: suite.userID}

	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(shift, nil).Once()
	suite.mockTxnRepo.On("SumAmountByShift", ctx, shift.ShiftID, domain.TxnSale, true).Return(decimal.NewFromInt(1200), nil).Once()

	sum, err := suite.service.GetSaleBalance(ctx, suite.branchID, suite.userID)

	suite.Require().NoError(err)
	suite.True(sum.Equal(decimal.NewFromInt(1200)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetPurchaseBalance_CompletedOnly() {
	ctx := context.Background()
	shift := &domain.Shift{ShiftID: uuid.NewString(), BranchID: suite.branchID, UserID: suite.userID}

	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(shift, nil).Once()
	suite.mockTxnRepo.On("SumAmountByShift", ctx, shift.ShiftID, domain.TxnPurchase, true).Return(decimal.NewFromInt(845), nil).Once()

	sum, err := suite.service.GetPurchaseBalance(ctx, suite.branchID, suite.userID)

	suite.Require().NoError(err)
	suite.True(sum.Equal(decimal.NewFromInt(845)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetExpenseBalance_NoActiveShift() {
	ctx := context.Background()

	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	sum, err := suite.service.GetExpenseBalance(ctx, suite.branchID, suite.userID)

	suite.Require().NoError(err)
	suite.True(sum.IsZero())
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SumAmountByShift", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestGetCashBalance_DerivesFromShiftCounters() {
	ctx := context.Background()
	shift := &domain.Shift{
		ShiftID:      uuid.NewString(),
		BranchID:     suite.branchID,
		UserID:       suite.userID,
		InitialCash:  decimal.NewFromInt(1000),
		AddedCapital: decimal.NewFromInt(500),
		RunningTotal: decimal.NewFromInt(-150),
	}

	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(shift, nil).Once()

	resp, err := suite.service.GetCashBalance(ctx, suite.branchID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(shift.ShiftID, resp.ShiftID)
	// 1000 + 500 - (-150)
	suite.True(resp.CashBalance.Equal(decimal.NewFromInt(1650)))
	suite.True(resp.RunningTotal.Equal(decimal.NewFromInt(-150)))
}

func (suite *BalanceServiceTestSuite) TestGetCashBalance_NoActiveShift() {
	ctx := context.Background()

	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetCashBalance(ctx, suite.branchID, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(resp.ShiftID)
	suite.True(resp.CashBalance.IsZero())
	suite.True(resp.InitialCash.IsZero())
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
