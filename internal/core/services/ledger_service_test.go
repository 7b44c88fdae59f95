package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/core/services"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindItemsByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionItem, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionItem), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByShift(ctx context.Context, shiftID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByBranch(ctx context.Context, branchID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, branchID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockTransactionRepository) SumAmountByShift(ctx context.Context, shiftID string, txnType domain.TransactionType, completedOnly bool) (decimal.Decimal, error) {
	args := m.Called(ctx, shiftID, txnType, completedOnly)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, items []domain.TransactionItem, runningTotalDelta decimal.Decimal) error {
	args := m.Called(ctx, txn, items, runningTotalDelta)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, update domain.TransactionUpdate, items []domain.TransactionItem, runningTotalDelta decimal.Decimal) error {
	args := m.Called(ctx, transactionID, update, items, runningTotalDelta)
	return args.Error(0)
}

// --- Mock ShiftService ---
type MockShiftService struct {
	mock.Mock
}

var _ portssvc.ShiftSvcFacade = (*MockShiftService)(nil)

func (m *MockShiftService) GetShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftService) GetActiveShiftsForUser(ctx context.Context, userID string) ([]domain.ActiveShiftView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveShiftView), args.Error(1)
}

func (m *MockShiftService) ListShiftsByBranch(ctx context.Context, branchID string, limit int) ([]domain.Shift, error) {
	args := m.Called(ctx, branchID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftService) GetActiveShift(ctx context.Context, branchID, userID string) (*domain.Shift, error) {
	args := m.Called(ctx, branchID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftService) ResolveTransactionDate(ctx context.Context, userID, branchID string) time.Time {
	args := m.Called(ctx, userID, branchID)
	return args.Get(0).(time.Time)
}

func (m *MockShiftService) OpenShift(ctx context.Context, req dto.OpenShiftRequest) (*domain.Shift, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftService) CloseShift(ctx context.Context, shiftID string) (*dto.CloseShiftResponse, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CloseShiftResponse), args.Error(1)
}

func (m *MockShiftService) AddCapital(ctx context.Context, shiftID string, req dto.AddCapitalRequest) (*dto.AddCapitalResponse, error) {
	args := m.Called(ctx, shiftID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AddCapitalResponse), args.Error(1)
}

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

func (m *MockPartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) FindPartyByName(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error) {
	args := m.Called(ctx, partyType, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) ListParties(ctx context.Context, branchID string, partyType domain.PartyType) ([]domain.Party, error) {
	args := m.Called(ctx, branchID, partyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo  *MockTransactionRepository
	mockShiftSvc *MockShiftService
	mockPartySvc *MockPartyService
	clock        stubClock
	service      portssvc.LedgerSvcFacade
	branchID     string
	userID       string
	shift        *domain.Shift
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockShiftSvc = new(MockShiftService)
	suite.mockPartySvc = new(MockPartyService)
	suite.clock = stubClock{now: time.Date(2024, 3, 15, 10, 30, 0, 0, time.FixedZone("UTC+8", 8*3600))}
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockShiftSvc, suite.mockPartySvc, suite.clock)

	suite.branchID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.shift = &domain.Shift{
		ShiftID:   uuid.NewString(),
		BranchID:  suite.branchID,
		UserID:    suite.userID,
		StartTime: suite.clock.now.Add(-time.Hour),
	}
}

func (suite *LedgerServiceTestSuite) expectActiveShift() {
	suite.mockShiftSvc.On("GetActiveShift", mock.Anything, suite.branchID, suite.userID).Return(suite.shift, nil).Once()
	suite.mockShiftSvc.On("ResolveTransactionDate", mock.Anything, suite.userID, suite.branchID).Return(suite.clock.now).Once()
}

func deltaEquals(expected decimal.Decimal) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(expected) })
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestRecordExpense_Success() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		TotalAmount: decimal.NewFromInt(50),
		Notes:       "diesel",
	}

	suite.expectActiveShift()
	// Expenses add the full amount to the running total.
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.TxnExpense &&
			txn.ShiftID != nil && *txn.ShiftID == suite.shift.ShiftID &&
			txn.Status == domain.StatusCompleted &&
			txn.PaymentMethod == domain.PaymentCash
	}), mock.Anything, deltaEquals(decimal.NewFromInt(50))).Return(nil).Once()

	txn, err := suite.service.RecordExpense(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.True(txn.TotalAmount.Equal(decimal.NewFromInt(50)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordExpense_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		TotalAmount: decimal.Zero,
	}

	_, err := suite.service.RecordExpense(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShiftSvc.AssertNotCalled(suite.T(), "GetActiveShift", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordExpense_NoActiveShift() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		UserType:    "operator",
		TotalAmount: decimal.NewFromInt(50),
	}

	suite.mockShiftSvc.On("GetActiveShift", ctx, suite.branchID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordExpense(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoActiveShift)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordExpense_OwnerWithoutShift() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		UserType:    "owner",
		TotalAmount: decimal.NewFromInt(75),
	}

	suite.mockShiftSvc.On("GetActiveShift", ctx, suite.branchID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockShiftSvc.On("ResolveTransactionDate", mock.Anything, suite.userID, suite.branchID).Return(suite.clock.now).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.ShiftID == nil
	}), mock.Anything, deltaEquals(decimal.NewFromInt(75))).Return(nil).Once()

	txn, err := suite.service.RecordExpense(ctx, req)

	suite.Require().NoError(err)
	suite.Nil(txn.ShiftID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordLoan_Success() {
	ctx := context.Background()
	party := &domain.Party{
		PartyID:  uuid.NewString(),
		Type:     domain.PartyEmployee,
		Name:     "Ramon",
		BranchID: suite.branchID,
	}
	req := dto.RecordLoanRequest{
		PartyType:   "employee",
		PartyName:   "Ramon",
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		TotalAmount: decimal.NewFromInt(1000),
	}

	suite.mockPartySvc.On("FindPartyByName", ctx, domain.PartyEmployee, "Ramon").Return(party, nil).Once()
	suite.expectActiveShift()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.TxnLoan &&
			txn.EmployeeID != nil && *txn.EmployeeID == party.PartyID &&
			txn.PartyType == domain.PartyEmployee
	}), mock.Anything, deltaEquals(decimal.NewFromInt(1000))).Return(nil).Once()

	txn, err := suite.service.RecordLoan(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn.EmployeeID)
	suite.Equal(party.PartyID, *txn.EmployeeID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordLoan_PartyResolvedBeforeAmountCheck() {
	ctx := context.Background()
	req := dto.RecordLoanRequest{
		PartyType:   "seller",
		PartyName:   "Unknown Seller",
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		TotalAmount: decimal.Zero, // invalid, but the name lookup still runs first
	}

	suite.mockPartySvc.On("FindPartyByName", ctx, domain.PartySeller, "Unknown Seller").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordLoan(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPartySvc.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordRepayment_NegativeDelta() {
	ctx := context.Background()
	party := &domain.Party{
		PartyID:  uuid.NewString(),
		Type:     domain.PartySeller,
		Name:     "Aling Nena",
		BranchID: suite.branchID,
	}
	req := dto.RecordLoanRequest{
		PartyType:   "seller",
		PartyName:   "Aling Nena",
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		TotalAmount: decimal.NewFromInt(400),
	}

	suite.mockPartySvc.On("FindPartyByName", ctx, domain.PartySeller, "Aling Nena").Return(party, nil).Once()
	suite.expectActiveShift()
	// Repayments reverse the loan's effect on the running total.
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.TxnRepayment &&
			txn.SellerID != nil && *txn.SellerID == party.PartyID
	}), mock.Anything, deltaEquals(decimal.NewFromInt(-400))).Return(nil).Once()

	_, err := suite.service.RecordRepayment(ctx, req)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordSale_SubtractsFromRunningTotal() {
	ctx := context.Background()
	req := dto.RecordSaleRequest{
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		PartyType:   "buyer",
		TotalAmount: decimal.NewFromInt(200),
		Items: []dto.TransactionItemRequest{
			{ItemID: uuid.NewString(), Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(20), Subtotal: decimal.NewFromInt(200)},
		},
	}

	suite.expectActiveShift()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.TxnSale && txn.Status == domain.StatusCompleted
	}), mock.MatchedBy(func(items []domain.TransactionItem) bool {
		return len(items) == 1 && items[0].Subtotal.Equal(decimal.NewFromInt(200))
	}), deltaEquals(decimal.NewFromInt(-200))).Return(nil).Once()

	_, err := suite.service.RecordSale(ctx, req)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordSale_NoItems() {
	ctx := context.Background()
	req := dto.RecordSaleRequest{
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		PartyType:   "buyer",
		TotalAmount: decimal.NewFromInt(200),
	}

	_, err := suite.service.RecordSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordPurchase_PendingHasNoCashEffect() {
	ctx := context.Background()
	req := dto.RecordPurchaseRequest{
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		PartyType:   "seller",
		Status:      "pending",
		TotalAmount: decimal.NewFromInt(350),
		Items: []dto.TransactionItemRequest{
			{ItemID: uuid.NewString(), Quantity: decimal.NewFromInt(70), UnitPrice: decimal.NewFromInt(5), Subtotal: decimal.NewFromInt(350)},
		},
	}

	suite.expectActiveShift()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.TxnPurchase && txn.Status == domain.StatusPending
	}), mock.Anything, deltaEquals(decimal.Zero)).Return(nil).Once()

	_, err := suite.service.RecordPurchase(ctx, req)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordPurchase_CompletedAddsToRunningTotal() {
	ctx := context.Background()
	req := dto.RecordPurchaseRequest{
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		PartyType:   "seller",
		TotalAmount: decimal.NewFromInt(350),
		Items: []dto.TransactionItemRequest{
			{ItemID: uuid.NewString(), Quantity: decimal.NewFromInt(70), UnitPrice: decimal.NewFromInt(5), Subtotal: decimal.NewFromInt(350)},
		},
	}

	suite.expectActiveShift()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.TxnPurchase && txn.Status == domain.StatusCompleted
	}), mock.Anything, deltaEquals(decimal.NewFromInt(350))).Return(nil).Once()

	_, err := suite.service.RecordPurchase(ctx, req)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_AmountAccumulates() {
	ctx := context.Background()
	existing := &domain.Transaction{
		TransactionID: uuid.NewString(),
		BranchID:      suite.branchID,
		ShiftID:       &suite.shift.ShiftID,
		UserID:        suite.userID,
		Type:          domain.TxnExpense,
		TotalAmount:   decimal.NewFromInt(100),
		Status:        domain.StatusCompleted,
	}
	amountDelta := decimal.NewFromInt(50)
	req := dto.UpdateTransactionRequest{TotalAmount: &amountDelta}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, existing.TransactionID).Return(existing, nil).Once()
	suite.mockShiftSvc.On("ResolveTransactionDate", mock.Anything, suite.userID, suite.branchID).Return(suite.clock.now).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, existing.TransactionID, mock.MatchedBy(func(u domain.TransactionUpdate) bool {
		return u.AmountDelta != nil && u.AmountDelta.Equal(amountDelta)
	}), mock.Anything, deltaEquals(decimal.NewFromInt(50))).Return(nil).Once()

	err := suite.service.UpdateTransaction(ctx, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_CompletedNeverRevertsToPending() {
	ctx := context.Background()
	existing := &domain.Transaction{
		TransactionID: uuid.NewString(),
		BranchID:      suite.branchID,
		ShiftID:       &suite.shift.ShiftID,
		UserID:        suite.userID,
		Type:          domain.TxnPurchase,
		Status:        domain.StatusCompleted,
	}
	pending := "pending"
	req := dto.UpdateTransactionRequest{Status: &pending}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, existing.TransactionID).Return(existing, nil).Once()

	err := suite.service.UpdateTransaction(ctx, existing.TransactionID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_PendingToCompletedAppliesDelta() {
	ctx := context.Background()
	existing := &domain.Transaction{
		TransactionID: uuid.NewString(),
		BranchID:      suite.branchID,
		ShiftID:       &suite.shift.ShiftID,
		UserID:        suite.userID,
		Type:          domain.TxnPurchase,
		TotalAmount:   decimal.Zero,
		Status:        domain.StatusPending,
	}
	// Completing a pending purchase with its full amount moves the running total.
	amountDelta := decimal.NewFromInt(350)
	completed := "completed"
	req := dto.UpdateTransactionRequest{TotalAmount: &amountDelta, Status: &completed}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, existing.TransactionID).Return(existing, nil).Once()
	suite.mockShiftSvc.On("ResolveTransactionDate", mock.Anything, suite.userID, suite.branchID).Return(suite.clock.now).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, existing.TransactionID, mock.AnythingOfType("domain.TransactionUpdate"), mock.Anything, deltaEquals(decimal.NewFromInt(350))).Return(nil).Once()

	err := suite.service.UpdateTransaction(ctx, existing.TransactionID, req)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.UpdateTransaction(ctx, transactionID, dto.UpdateTransactionRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
