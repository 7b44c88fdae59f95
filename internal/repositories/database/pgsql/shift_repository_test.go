package pgsql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	"github.com/scrapline/junkshop_backoffice/internal/repositories/database/pgsql"
)

func sampleShift() domain.Shift {
	now := time.Now()
	return domain.Shift{
		ShiftID:      uuid.NewString(),
		BranchID:     uuid.NewString(),
		UserID:       uuid.NewString(),
		StartTime:    now,
		InitialCash:  decimal.NewFromInt(1000),
		AddedCapital: decimal.Zero,
		RunningTotal: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
}

// The open-shift existence check in the service is check-then-insert, so two
// concurrent opens can both pass it; the loser then hits the partial unique
// index and must come back as a conflict, not a bare 500.
func TestSaveShift_UniqueViolationMapsToConflict(t *testing.T) {
	db := &fakeDB{execErr: &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_shifts_branch_open",
	}}
	repo := &pgsql.PgxShiftRepository{BaseRepository: pgsql.BaseRepository{Pool: db}}

	err := repo.SaveShift(context.Background(), sampleShift())

	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestSaveShift_OtherErrorsAreNotConflicts(t *testing.T) {
	db := &fakeDB{execErr: &pgconn.PgError{Code: "53300"}} // too_many_connections
	repo := &pgsql.PgxShiftRepository{BaseRepository: pgsql.BaseRepository{Pool: db}}

	err := repo.SaveShift(context.Background(), sampleShift())

	require.Error(t, err)
	require.NotErrorIs(t, err, apperrors.ErrConflict)
}

// Guards the schema backstop itself: the open-shift indexes must stay UNIQUE,
// otherwise the conflict mapping above has nothing to fire on.
func TestInitSchema_OpenShiftIndexesAreUnique(t *testing.T) {
	ddl, err := os.ReadFile("../../../../migrations/000001_init_schema.up.sql")
	require.NoError(t, err)

	schema := string(ddl)
	require.Contains(t, schema, "CREATE UNIQUE INDEX idx_shifts_branch_open ON shifts (branch_id) WHERE end_time IS NULL;")
	require.Contains(t, schema, "CREATE UNIQUE INDEX idx_shifts_user_open ON shifts (user_id) WHERE end_time IS NULL;")
}
