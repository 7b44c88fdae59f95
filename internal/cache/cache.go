package cache

import (
	"context"
	"time"
)

// ActiveShiftCache caches the active shift id per (branch, user) pair so the
// per-transaction shift lookup does not always hit the database. Entries are
// invalidated whenever a shift opens or closes; balances are never cached
// because the running total changes on every write.
type ActiveShiftCache interface {
	Get(ctx context.Context, branchID, userID string) (string, bool, error)
	Set(ctx context.Context, branchID, userID, shiftID string, ttl time.Duration) error
	Invalidate(ctx context.Context, branchID, userID string) error
}

// NoopActiveShiftCache is used when no cache backend is configured.
type NoopActiveShiftCache struct{}

func (NoopActiveShiftCache) Get(_ context.Context, _, _ string) (string, bool, error) {
	return "", false, nil
}

func (NoopActiveShiftCache) Set(_ context.Context, _, _, _ string, _ time.Duration) error {
	return nil
}

func (NoopActiveShiftCache) Invalidate(_ context.Context, _, _ string) error {
	return nil
}
