package points

import (
	"context"
	"errors"
	"testing"

	"auraSync/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// in-memory ledger with the same contract as the postgres repository
type fakeRepo struct {
	balances map[uint]int64
	txs      []domain.PointsTransaction
	err      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{balances: map[uint]int64{}}
}

func (f *fakeRepo) Apply(ctx context.Context, tx domain.PointsTransaction) (domain.PointsTransaction, bool, error) {
	if f.err != nil {
		return domain.PointsTransaction{}, false, f.err
	}
	if tx.RefKey != nil {
		for _, existing := range f.txs {
			if existing.UserID == tx.UserID && existing.RefKey != nil && *existing.RefKey == *tx.RefKey {
				return existing, false, nil
			}
		}
	}

	next := f.balances[tx.UserID] + tx.Amount
	if next < 0 {
		return domain.PointsTransaction{}, false, domain.ErrInsufficientPoints
	}
	f.balances[tx.UserID] = next
	tx.BalanceAfter = next
	f.txs = append(f.txs, tx)
	return tx, true, nil
}

func (f *fakeRepo) Balance(ctx context.Context, userID uint) (int64, error) {
	return f.balances[userID], f.err
}

func (f *fakeRepo) History(ctx context.Context, userID uint, limit int) ([]domain.PointsTransaction, error) {
	var out []domain.PointsTransaction
	for i := len(f.txs) - 1; i >= 0; i-- {
		if f.txs[i].UserID == userID {
			out = append(out, f.txs[i])
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, f.err
}

func TestAward(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPointsService(repo)
	ctx := context.Background()

	tx, created, err := svc.Award(ctx, 7, 50, "onboarding body", "onboarding:body")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(50), tx.BalanceAfter)
	assert.Equal(t, domain.PointsAward, tx.Kind)
	require.NotNil(t, tx.RefKey)

	// same ref key is a no-op
	again, created, err := svc.Award(ctx, 7, 50, "onboarding body", "onboarding:body")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, tx.ID, again.ID)

	balance, err := svc.Balance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)

	// without ref key awards always apply
	_, created, err = svc.Award(ctx, 7, 10, "daily check-in", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(60), repo.balances[7])
}

func TestAward_Invalid(t *testing.T) {
	svc := NewPointsService(newFakeRepo())

	_, _, err := svc.Award(context.Background(), 1, 0, "x", "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, _, err = svc.Award(context.Background(), 0, 5, "x", "")
	assert.Error(t, err)
}

func TestSpend(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPointsService(repo)
	ctx := context.Background()

	_, _, err := svc.Award(ctx, 3, 100, "quiz", "")
	require.NoError(t, err)

	tx, err := svc.Spend(ctx, 3, 40, "voucher")
	require.NoError(t, err)
	assert.Equal(t, int64(-40), tx.Amount)
	assert.Equal(t, int64(60), tx.BalanceAfter)

	_, err = svc.Spend(ctx, 3, 61, "voucher")
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
	assert.Equal(t, int64(60), repo.balances[3])

	_, err = svc.Spend(ctx, 3, -5, "voucher")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestSpend_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("db down")
	svc := NewPointsService(repo)

	_, err := svc.Spend(context.Background(), 3, 1, "voucher")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInsufficientPoints)
}

func TestHistory_LimitIsClamped(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPointsService(repo)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		_, _, err := svc.Award(ctx, 9, 1, "tick", "")
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, 9, 0)
	require.NoError(t, err)
	assert.Len(t, history, defaultHistoryLimit)

	history, err = svc.History(ctx, 9, 1000)
	require.NoError(t, err)
	assert.Len(t, history, 30)
}
