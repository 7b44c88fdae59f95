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
	"github.com/scrapline/junkshop_backoffice/internal/cache"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portsrepo "github.com/scrapline/junkshop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/core/services"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
)

// --- Mock ShiftRepository ---
type MockShiftRepository struct {
	mock.Mock
}

var _ portsrepo.ShiftRepositoryFacade = (*MockShiftRepository)(nil)

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindActiveShiftByBranch(ctx context.Context, branchID string) (*domain.Shift, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindActiveShift(ctx context.Context, branchID, userID string) (*domain.Shift, error) {
	args := m.Called(ctx, branchID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListActiveShiftsByUser(ctx context.Context, userID string) ([]domain.ActiveShiftView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveShiftView), args.Error(1)
}

func (m *MockShiftRepository) ListShiftsByBranch(ctx context.Context, branchID string, limit int) ([]domain.Shift, error) {
	args := m.Called(ctx, branchID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) CloseShift(ctx context.Context, shiftID string, endTime time.Time, finalCash decimal.Decimal) error {
	args := m.Called(ctx, shiftID, endTime, finalCash)
	return args.Error(0)
}

func (m *MockShiftRepository) AddCapital(ctx context.Context, shiftID string, amount decimal.Decimal, audit domain.Transaction) (decimal.Decimal, error) {
	args := m.Called(ctx, shiftID, amount, audit)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Stub Clock ---
type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time { return c.now }

// --- Test Suite Setup ---
type ShiftServiceTestSuite struct {
	suite.Suite
	mockShiftRepo *MockShiftRepository
	clock         stubClock
	service       portssvc.ShiftSvcFacade
	branchID      string
	userID        string
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.clock = stubClock{now: time.Date(2024, 3, 15, 14, 45, 10, 0, time.FixedZone("UTC+8", 8*3600))}
	suite.service = services.NewShiftService(suite.mockShiftRepo, suite.clock, cache.NoopActiveShiftCache{})
	suite.branchID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ShiftServiceTestSuite) activeShift(start time.Time) *domain.Shift {
	return &domain.Shift{
		ShiftID:      uuid.NewString(),
		BranchID:     suite.branchID,
		UserID:       suite.userID,
		StartTime:    start,
		InitialCash:  decimal.NewFromInt(1000),
		AddedCapital: decimal.Zero,
		RunningTotal: decimal.Zero,
	}
}

// --- Test Cases ---

func (suite *ShiftServiceTestSuite) TestOpenShift_Success() {
	ctx := context.Background()
	req := dto.OpenShiftRequest{
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		InitialCash: decimal.NewFromInt(1000),
		Notes:       "morning shift",
	}

	suite.mockShiftRepo.On("FindActiveShiftByBranch", ctx, suite.branchID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockShiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(nil).Once()

	shift, err := suite.service.OpenShift(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(shift)
	suite.NotEmpty(shift.ShiftID)
	suite.Equal(suite.branchID, shift.BranchID)
	suite.Equal(suite.userID, shift.UserID)
	suite.True(shift.IsActive())
	suite.True(shift.InitialCash.Equal(decimal.NewFromInt(1000)))
	suite.True(shift.RunningTotal.IsZero())
	suite.True(shift.AddedCapital.IsZero())
	suite.Equal(suite.clock.now, shift.StartTime)

	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestOpenShift_BranchAlreadyActive() {
	ctx := context.Background()
	req := dto.OpenShiftRequest{BranchID: suite.branchID, UserID: suite.userID}

	existing := suite.activeShift(suite.clock.now.Add(-2 * time.Hour))
	suite.mockShiftRepo.On("FindActiveShiftByBranch", ctx, suite.branchID).Return(existing, nil).Once()

	_, err := suite.service.OpenShift(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestOpenShift_NegativeInitialCash() {
	ctx := context.Background()
	req := dto.OpenShiftRequest{
		BranchID:    suite.branchID,
		UserID:      suite.userID,
		InitialCash: decimal.NewFromInt(-50),
	}

	_, err := suite.service.OpenShift(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "FindActiveShiftByBranch", mock.Anything, mock.Anything)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_ComputesFinalCash() {
	ctx := context.Background()

	// Sale of 200 and expense of 50 leave running_total at -150.
	shift := suite.activeShift(suite.clock.now.Add(-6 * time.Hour))
	shift.RunningTotal = decimal.NewFromInt(-150)

	expectedFinal := decimal.NewFromInt(1150)

	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("CloseShift", ctx, shift.ShiftID, mock.AnythingOfType("time.Time"), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(expectedFinal)
	})).Return(nil).Once()

	resp, err := suite.service.CloseShift(ctx, shift.ShiftID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.FinalCash.Equal(expectedFinal))
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestCloseShift_OvernightKeepsOpeningDate() {
	ctx := context.Background()

	// Shift opened the previous evening; the close is dated to that same day.
	start := time.Date(2024, 3, 14, 18, 0, 0, 0, suite.clock.now.Location())
	shift := suite.activeShift(start)

	var capturedEnd time.Time
	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("CloseShift", ctx, shift.ShiftID, mock.MatchedBy(func(end time.Time) bool {
		capturedEnd = end
		return true
	}), mock.AnythingOfType("decimal.Decimal")).Return(nil).Once()

	resp, err := suite.service.CloseShift(ctx, shift.ShiftID)

	suite.Require().NoError(err)
	suite.Equal(2024, capturedEnd.Year())
	suite.Equal(time.March, capturedEnd.Month())
	suite.Equal(14, capturedEnd.Day())
	suite.Equal(14, capturedEnd.Hour())
	suite.Equal(45, capturedEnd.Minute())
	suite.True(capturedEnd.Before(start), "recorded end precedes the start for overnight shifts")
	suite.Equal(capturedEnd, resp.EndTime)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_AlreadyClosed() {
	ctx := context.Background()

	shift := suite.activeShift(suite.clock.now.Add(-8 * time.Hour))
	end := suite.clock.now.Add(-time.Hour)
	shift.EndTime = &end

	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()

	_, err := suite.service.CloseShift(ctx, shift.ShiftID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "CloseShift", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestAddCapital_Success() {
	ctx := context.Background()

	shift := suite.activeShift(suite.clock.now.Add(-2 * time.Hour))
	shift.AddedCapital = decimal.NewFromInt(200)

	req := dto.AddCapitalRequest{
		Amount:   decimal.NewFromInt(300),
		BranchID: suite.branchID,
		UserID:   suite.userID,
		Notes:    "float top-up",
	}

	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	// ResolveTransactionDate resolves the caller's active shift for the audit row date.
	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("AddCapital", ctx, shift.ShiftID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(300))
	}), mock.MatchedBy(func(audit domain.Transaction) bool {
		return audit.Type == domain.TxnCapitalAddition &&
			audit.TotalAmount.Equal(decimal.NewFromInt(300)) &&
			audit.ShiftID != nil && *audit.ShiftID == shift.ShiftID &&
			audit.Status == domain.StatusCompleted
	})).Return(decimal.NewFromInt(500), nil).Once()

	resp, err := suite.service.AddCapital(ctx, shift.ShiftID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(shift.ShiftID, resp.ShiftID)
	suite.True(resp.AddedCapital.Equal(decimal.NewFromInt(500)))
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestAddCapital_ReportsPostIncrementValue() {
	ctx := context.Background()

	// The shift row read before the increment is behind: another top-up landed
	// in between. The response must carry the repository's post-update value,
	// not a sum derived from the stale read.
	shift := suite.activeShift(suite.clock.now.Add(-2 * time.Hour))
	shift.AddedCapital = decimal.NewFromInt(200)

	req := dto.AddCapitalRequest{
		Amount:   decimal.NewFromInt(100),
		BranchID: suite.branchID,
		UserID:   suite.userID,
	}

	suite.mockShiftRepo.On("FindShiftByID", ctx, shift.ShiftID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("AddCapital", ctx, shift.ShiftID, mock.Anything, mock.Anything).
		Return(decimal.NewFromInt(550), nil).Once()

	resp, err := suite.service.AddCapital(ctx, shift.ShiftID, req)

	suite.Require().NoError(err)
	suite.True(resp.AddedCapital.Equal(decimal.NewFromInt(550)))
}

func (suite *ShiftServiceTestSuite) TestAddCapital_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.AddCapitalRequest{Amount: decimal.Zero, BranchID: suite.branchID, UserID: suite.userID}

	_, err := suite.service.AddCapital(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "AddCapital", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestResolveTransactionDate_ShiftStartedToday() {
	ctx := context.Background()

	shift := suite.activeShift(suite.clock.now.Add(-3 * time.Hour))
	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(shift, nil).Once()

	resolved := suite.service.ResolveTransactionDate(ctx, suite.userID, suite.branchID)

	suite.Equal(suite.clock.now, resolved)
}

func (suite *ShiftServiceTestSuite) TestResolveTransactionDate_MultiDayShift() {
	ctx := context.Background()

	// Shift opened two days before "now": transactions stay dated to that day.
	start := time.Date(2024, 3, 13, 8, 0, 0, 0, suite.clock.now.Location())
	shift := suite.activeShift(start)
	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(shift, nil).Once()

	resolved := suite.service.ResolveTransactionDate(ctx, suite.userID, suite.branchID)

	suite.Equal(2024, resolved.Year())
	suite.Equal(time.March, resolved.Month())
	suite.Equal(13, resolved.Day())
	suite.Equal(14, resolved.Hour())
	suite.Equal(45, resolved.Minute())
	suite.Equal(10, resolved.Second())
}

func (suite *ShiftServiceTestSuite) TestResolveTransactionDate_NoActiveShiftFallsBack() {
	ctx := context.Background()

	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	resolved := suite.service.ResolveTransactionDate(ctx, suite.userID, suite.branchID)

	suite.Equal(suite.clock.now, resolved)
}

func (suite *ShiftServiceTestSuite) TestGetActiveShift_NotFound() {
	ctx := context.Background()

	suite.mockShiftRepo.On("FindActiveShift", ctx, suite.branchID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetActiveShift(ctx, suite.branchID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
