package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auraSync/business/points"
	"auraSync/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PointsRepository struct {
	DB *gorm.DB
}

var _ points.PointsRepository = (*PointsRepository)(nil)

func NewPointsRepository(db *gorm.DB) *PointsRepository {
	return &PointsRepository{DB: db}
}

// Apply inserts the transaction and moves the balance in one database
// transaction. The balance row is locked before the ref key is checked, so
// awards for one user run one at a time and a repeated ref key returns the
// stored row with created=false.
func (r *PointsRepository) Apply(ctx context.Context, tx domain.PointsTransaction) (domain.PointsTransaction, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.PointsTransaction{}, false, fmt.Errorf("context error: %w", err)
	}

	var (
		stored  domain.PointsTransaction
		created bool
	)

	err := r.DB.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&domain.PointsBalance{UserID: tx.UserID, UpdatedAt: tx.CreatedAt}).Error
		if err != nil {
			return fmt.Errorf("failed to init balance: %w", err)
		}

		var balance domain.PointsBalance
		err = db.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&balance, "user_id = ?", tx.UserID).Error
		if err != nil {
			return fmt.Errorf("failed to lock balance: %w", err)
		}

		if tx.RefKey != nil {
			existing, found, err := findByRefKey(db, tx.UserID, *tx.RefKey)
			if err != nil {
				return err
			}
			if found {
				stored = existing
				return nil
			}
		}

		next := balance.Balance + tx.Amount
		if next < 0 {
			return domain.ErrInsufficientPoints
		}
		tx.BalanceAfter = next

		if err := db.Create(&tx).Error; err != nil {
			if isUniqueViolation(err) && tx.RefKey != nil {
				return errDuplicateRefKey
			}
			return fmt.Errorf("failed to insert points transaction: %w", err)
		}

		err = db.Model(&domain.PointsBalance{}).
			Where("user_id = ?", tx.UserID).
			Updates(map[string]interface{}{
				"balance":    next,
				"updated_at": time.Now(),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}

		stored = tx
		created = true
		return nil
	})
	if errors.Is(err, errDuplicateRefKey) {
		// another writer committed the same ref key first
		existing, found, err := findByRefKey(r.DB.WithContext(ctx), tx.UserID, *tx.RefKey)
		if err != nil {
			return domain.PointsTransaction{}, false, err
		}
		if !found {
			return domain.PointsTransaction{}, false, fmt.Errorf("ref key %q conflicted but was not found", *tx.RefKey)
		}
		return existing, false, nil
	}
	if err != nil {
		return domain.PointsTransaction{}, false, err
	}

	return stored, created, nil
}

var errDuplicateRefKey = errors.New("duplicate points ref key")

const uniqueViolationCode = "23505"

func findByRefKey(db *gorm.DB, userID uint, refKey string) (domain.PointsTransaction, bool, error) {
	var existing domain.PointsTransaction
	err := db.Where("user_id = ? AND ref_key = ?", userID, refKey).First(&existing).Error
	if err == nil {
		return existing, true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.PointsTransaction{}, false, nil
	}
	return domain.PointsTransaction{}, false, fmt.Errorf("failed to look up ref key: %w", err)
}

// isUniqueViolation reports a postgres unique_violation, raw or translated by gorm.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (r *PointsRepository) Balance(ctx context.Context, userID uint) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var balance domain.PointsBalance
	err := r.DB.WithContext(ctx).First(&balance, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query balance: %w", err)
	}

	return balance.Balance, nil
}

func (r *PointsRepository) History(ctx context.Context, userID uint, limit int) ([]domain.PointsTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var txs []domain.PointsTransaction
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query points history: %w", err)
	}

	return txs, nil
}
