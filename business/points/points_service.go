package points

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"auraSync/domain"
	"auraSync/pkg/logger"
	"auraSync/pkg/metrics"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// PointsRepository contract interface
type PointsRepository interface {
	// Apply stores the transaction and moves the balance atomically. When
	// the transaction carries a RefKey already used by the same user, the
	// stored transaction is returned with created=false and nothing changes.
	// A resulting negative balance fails with domain.ErrInsufficientPoints.
	Apply(ctx context.Context, tx domain.PointsTransaction) (stored domain.PointsTransaction, created bool, err error)
	Balance(ctx context.Context, userID uint) (int64, error)
	History(ctx context.Context, userID uint, limit int) ([]domain.PointsTransaction, error)
}

type pointsService struct {
	repo PointsRepository
	now  func() time.Time
}

func NewPointsService(repo PointsRepository) *pointsService {
	return &pointsService{
		repo: repo,
		now:  time.Now,
	}
}

// Award credits points. A non-empty refKey makes the award idempotent per user.
func (s *pointsService) Award(ctx context.Context, userID uint, amount int64, reason, refKey string) (domain.PointsTransaction, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.PointsTransaction{}, false, fmt.Errorf("context error: %w", err)
	}
	if userID == 0 {
		return domain.PointsTransaction{}, false, errors.New("invalid user id")
	}
	if amount <= 0 {
		return domain.PointsTransaction{}, false, domain.ErrInvalidAmount
	}

	tx := s.newTransaction(userID, domain.PointsAward, amount, reason)
	if key := strings.TrimSpace(refKey); key != "" {
		tx.RefKey = &key
	}

	stored, created, err := s.repo.Apply(ctx, tx)
	if err != nil {
		logger.Error("Failed to award points", "user_id", userID, "error", err.Error())
		return domain.PointsTransaction{}, false, fmt.Errorf("failed to award points: %w", err)
	}

	if created {
		metrics.PointsTransactions.WithLabelValues(domain.PointsAward).Inc()
		logger.Info("points awarded", "user_id", userID, "amount", amount, "reason", reason, "balance", stored.BalanceAfter)
	}

	return stored, created, nil
}

func (s *pointsService) Spend(ctx context.Context, userID uint, amount int64, reason string) (domain.PointsTransaction, error) {
	if err := ctx.Err(); err != nil {
		return domain.PointsTransaction{}, fmt.Errorf("context error: %w", err)
	}
	if userID == 0 {
		return domain.PointsTransaction{}, errors.New("invalid user id")
	}
	if amount <= 0 {
		return domain.PointsTransaction{}, domain.ErrInvalidAmount
	}

	tx := s.newTransaction(userID, domain.PointsSpend, -amount, reason)

	stored, _, err := s.repo.Apply(ctx, tx)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientPoints) {
			return domain.PointsTransaction{}, err
		}
		logger.Error("Failed to spend points", "user_id", userID, "error", err.Error())
		return domain.PointsTransaction{}, fmt.Errorf("failed to spend points: %w", err)
	}

	metrics.PointsTransactions.WithLabelValues(domain.PointsSpend).Inc()

	return stored, nil
}

func (s *pointsService) Balance(ctx context.Context, userID uint) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	balance, err := s.repo.Balance(ctx, userID)
	if err != nil {
		logger.Error("Failed to get points balance", err)
		return 0, err
	}

	return balance, nil
}

func (s *pointsService) History(ctx context.Context, userID uint, limit int) ([]domain.PointsTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	history, err := s.repo.History(ctx, userID, limit)
	if err != nil {
		logger.Error("Failed to get points history", err)
		return nil, err
	}

	return history, nil
}

func (s *pointsService) newTransaction(userID uint, kind string, amount int64, reason string) domain.PointsTransaction {
	return domain.PointsTransaction{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: s.now(),
	}
}
