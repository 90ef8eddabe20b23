package postgres

import (
	"context"
	"errors"
	"fmt"

	"auraSync/business/catalog"
	"auraSync/domain"

	"gorm.io/gorm"
)

type OutfitRepository struct {
	DB *gorm.DB
}

var _ catalog.OutfitRepository = (*OutfitRepository)(nil)

func NewOutfitRepository(db *gorm.DB) *OutfitRepository {
	return &OutfitRepository{
		DB: db,
	}
}

func (r *OutfitRepository) Create(ctx context.Context, outfit *domain.Outfit) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(outfit).Error; err != nil {
		return fmt.Errorf("failed to create outfit: %w", err)
	}

	return nil
}

func (r *OutfitRepository) FindByID(ctx context.Context, id uint64) (domain.Outfit, error) {
	if err := ctx.Err(); err != nil {
		return domain.Outfit{}, fmt.Errorf("context error: %w", err)
	}

	var outfit domain.Outfit

	err := r.DB.WithContext(ctx).First(&outfit, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Outfit{}, domain.ErrNotFound
		}
		return domain.Outfit{}, fmt.Errorf("failed to find outfit: %w", err)
	}

	return outfit, nil
}

// FindByGender returns the listing in catalog order.
func (r *OutfitRepository) FindByGender(ctx context.Context, gender string) ([]domain.Outfit, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var outfits []domain.Outfit
	err := r.DB.WithContext(ctx).
		Where("gender = ?", gender).
		Order("position ASC").
		Order("id ASC").
		Find(&outfits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find outfits: %w", err)
	}

	return outfits, nil
}

func (r *OutfitRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Outfit{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete outfit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
