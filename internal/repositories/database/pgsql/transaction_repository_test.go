package pgsql_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/repositories/database/pgsql"
)

// fakeBatchResults stands in for a pgx batch; Close surfaces the configured error.
type fakeBatchResults struct {
	closeErr error
}

func (r fakeBatchResults) Exec() (pgconn.CommandTag, error) { return pgconn.CommandTag{}, r.closeErr }
func (r fakeBatchResults) Query() (pgx.Rows, error)         { return nil, r.closeErr }
func (r fakeBatchResults) QueryRow() pgx.Row                { return nil }
func (r fakeBatchResults) Close() error                     { return r.closeErr }

var _ pgx.BatchResults = fakeBatchResults{}

// fakeTx records the statements issued inside one database transaction and
// whether the transaction ended in a commit or a rollback.
type fakeTx struct {
	execSQL       []string
	execErr       error
	batchCloseErr error
	committed     bool
	rolledBack    bool
}

var _ pgx.Tx = (*fakeTx)(nil)

func (t *fakeTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(_ context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	t.rolledBack = true
	return nil
}

func (t *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	t.execSQL = append(t.execSQL, sql)
	if t.execErr != nil {
		return pgconn.CommandTag{}, t.execErr
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (t *fakeTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults {
	return fakeBatchResults{closeErr: t.batchCloseErr}
}

func (t *fakeTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return nil, nil }
func (t *fakeTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row        { return nil }
func (t *fakeTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *fakeTx) Conn() *pgx.Conn { return nil }

// fakeDB hands out the prepared fakeTx on Begin and the configured error on Exec.
type fakeDB struct {
	tx      *fakeTx
	execErr error
}

var _ pgsql.DB = (*fakeDB)(nil)

func (d *fakeDB) Begin(_ context.Context) (pgx.Tx, error) { return d.tx, nil }
func (d *fakeDB) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	if d.execErr != nil {
		return pgconn.CommandTag{}, d.execErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}
func (d *fakeDB) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return nil, nil }
func (d *fakeDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row        { return nil }

// --- Test Suite Setup ---
type TransactionRepositoryTestSuite struct {
	suite.Suite
	tx   *fakeTx
	repo *pgsql.PgxTransactionRepository
}

func (suite *TransactionRepositoryTestSuite) SetupTest() {
	suite.tx = &fakeTx{}
	suite.repo = &pgsql.PgxTransactionRepository{
		BaseRepository: pgsql.BaseRepository{Pool: &fakeDB{tx: suite.tx}},
	}
}

func (suite *TransactionRepositoryTestSuite) sampleTransaction(shiftID *string) (domain.Transaction, []domain.TransactionItem) {
	txnID := uuid.NewString()
	txn := domain.Transaction{
		TransactionID:   txnID,
		BranchID:        uuid.NewString(),
		ShiftID:         shiftID,
		PartyType:       domain.PartyBuyer,
		UserID:          uuid.NewString(),
		Type:            domain.TxnSale,
		TransactionDate: time.Now(),
		TotalAmount:     decimal.NewFromInt(200),
		PaymentMethod:   domain.PaymentCash,
		Status:          domain.StatusCompleted,
		CreatedAt:       time.Now(),
	}
	items := []domain.TransactionItem{{
		LineID:        uuid.NewString(),
		TransactionID: txnID,
		ItemID:        uuid.NewString(),
		Quantity:      decimal.NewFromInt(10),
		UnitPrice:     decimal.NewFromInt(20),
		Subtotal:      decimal.NewFromInt(200),
	}}
	return txn, items
}

func (suite *TransactionRepositoryTestSuite) execContaining(fragment string) []string {
	matched := []string{}
	for _, sql := range suite.tx.execSQL {
		if strings.Contains(sql, fragment) {
			matched = append(matched, sql)
		}
	}
	return matched
}

// --- Test Cases ---

func (suite *TransactionRepositoryTestSuite) TestSaveTransaction_CommitsInsertAndShiftUpdateTogether() {
	shiftID := uuid.NewString()
	txn, items := suite.sampleTransaction(&shiftID)

	err := suite.repo.SaveTransaction(context.Background(), txn, items, decimal.NewFromInt(-200))

	suite.Require().NoError(err)
	suite.True(suite.tx.committed)
	suite.Len(suite.execContaining("INSERT INTO transactions"), 1)
	suite.Len(suite.execContaining("UPDATE shifts"), 1)
}

func (suite *TransactionRepositoryTestSuite) TestSaveTransaction_LineItemFailureRollsBackEverything() {
	shiftID := uuid.NewString()
	txn, items := suite.sampleTransaction(&shiftID)
	suite.tx.batchCloseErr = errors.New("null value in column \"item_id\" violates not-null constraint")

	err := suite.repo.SaveTransaction(context.Background(), txn, items, decimal.NewFromInt(-200))

	suite.Require().Error(err)
	suite.False(suite.tx.committed, "a failed line item batch must not commit the transaction row")
	suite.True(suite.tx.rolledBack)
	suite.Empty(suite.execContaining("UPDATE shifts"), "running_total must stay untouched when the batch fails")
}

func (suite *TransactionRepositoryTestSuite) TestSaveTransaction_InsertFailureRollsBack() {
	shiftID := uuid.NewString()
	txn, items := suite.sampleTransaction(&shiftID)
	suite.tx.execErr = errors.New("connection reset by peer")

	err := suite.repo.SaveTransaction(context.Background(), txn, items, decimal.NewFromInt(-200))

	suite.Require().Error(err)
	suite.False(suite.tx.committed)
	suite.True(suite.tx.rolledBack)
}

func (suite *TransactionRepositoryTestSuite) TestSaveTransaction_NilShiftSkipsRunningTotal() {
	txn, items := suite.sampleTransaction(nil)

	err := suite.repo.SaveTransaction(context.Background(), txn, items, decimal.NewFromInt(-200))

	suite.Require().NoError(err)
	suite.True(suite.tx.committed)
	suite.Empty(suite.execContaining("UPDATE shifts"), "an owner-recorded transaction has no shift to adjust")
}

func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}
