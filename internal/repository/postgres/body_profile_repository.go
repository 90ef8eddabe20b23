package postgres

import (
	"context"
	"errors"
	"fmt"

	"auraSync/business/onboarding"
	"auraSync/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BodyProfileRepository struct {
	DB *gorm.DB
}

var _ onboarding.ProfileRepository = (*BodyProfileRepository)(nil)

func NewBodyProfileRepository(db *gorm.DB) *BodyProfileRepository {
	return &BodyProfileRepository{DB: db}
}

func (r *BodyProfileRepository) FindByUserID(ctx context.Context, userID uint) (domain.BodyProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.BodyProfile{}, fmt.Errorf("context error: %w", err)
	}

	var profile domain.BodyProfile
	err := r.DB.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BodyProfile{}, domain.ErrNotFound
		}
		return domain.BodyProfile{}, fmt.Errorf("failed to find body profile: %w", err)
	}

	return profile, nil
}

// Upsert writes the whole profile keyed by user. The original row id and
// created_at survive the update.
func (r *BodyProfileRepository) Upsert(ctx context.Context, profile *domain.BodyProfile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"gender",
				"body_shape",
				"body_source",
				"low_confidence",
				"measurements",
				"ranking",
				"skin_tone",
				"undertone",
				"face_shape",
				"style_archetype",
				"updated_at",
			}),
		}).
		Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert body profile: %w", err)
	}

	return nil
}
