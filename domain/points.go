package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	PointsAward = "award"
	PointsSpend = "spend"
)

// CREATE TABLE public.points_transactions (
//     id             UUID PRIMARY KEY,
//     user_id        BIGINT NOT NULL,
//     kind           TEXT NOT NULL,
//     amount         BIGINT NOT NULL,
//     reason         TEXT,
//     ref_key        TEXT,
//     balance_after  BIGINT NOT NULL,
//     created_at     TIMESTAMPTZ DEFAULT NOW(),
//     UNIQUE (user_id, ref_key)
// );

type PointsTransaction struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null;index;uniqueIndex:idx_points_user_ref" json:"user_id"`
	Kind         string    `gorm:"column:kind;type:text;not null" json:"kind"`
	Amount       int64     `gorm:"column:amount;not null" json:"amount"` // signed: spends are negative
	Reason       string    `gorm:"column:reason;type:text" json:"reason"`
	RefKey       *string   `gorm:"column:ref_key;type:text;uniqueIndex:idx_points_user_ref" json:"ref_key,omitempty"`
	BalanceAfter int64     `gorm:"column:balance_after;not null" json:"balance_after"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PointsTransaction) TableName() string {
	return "points_transactions"
}

type PointsBalance struct {
	UserID    uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Balance   int64     `gorm:"column:balance;not null;default:0" json:"balance"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PointsBalance) TableName() string {
	return "points_balances"
}
