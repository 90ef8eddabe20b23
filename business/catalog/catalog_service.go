package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auraSync/domain"
	"auraSync/pkg/logger"
	"auraSync/pkg/metrics"
)

// OutfitRepository contract interface
type OutfitRepository interface {
	Create(ctx context.Context, outfit *domain.Outfit) error
	FindByID(ctx context.Context, id uint64) (domain.Outfit, error)
	FindByGender(ctx context.Context, gender string) ([]domain.Outfit, error)
	Delete(ctx context.Context, id uint64) error
}

// OutfitCache holds the full per-gender listing.
type OutfitCache interface {
	GetByGender(ctx context.Context, gender string) ([]domain.Outfit, bool, error)
	SetByGender(ctx context.Context, gender string, outfits []domain.Outfit) error
	Invalidate(ctx context.Context, gender string) error
}

type ListQuery struct {
	Sort      string
	Page      int
	PageSize  int
	Seed      int64
	BodyShape string
}

type catalogService struct {
	outfitRepo OutfitRepository
	cache      OutfitCache
}

// NewCatalogService builds the service. cache may be nil.
func NewCatalogService(outfitRepo OutfitRepository, cache OutfitCache) *catalogService {
	return &catalogService{
		outfitRepo: outfitRepo,
		cache:      cache,
	}
}

func (s *catalogService) ListOutfits(ctx context.Context, gender string, q ListQuery) (domain.OutfitPage, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when list outfits")
		return domain.OutfitPage{}, fmt.Errorf("context error: %w", err)
	}

	g, err := domain.ParseGender(gender)
	if err != nil {
		return domain.OutfitPage{}, err
	}

	outfits, err := s.loadByGender(ctx, g)
	if err != nil {
		return domain.OutfitPage{}, err
	}

	if shape := strings.ToLower(strings.TrimSpace(q.BodyShape)); shape != "" {
		filtered := make([]domain.Outfit, 0, len(outfits))
		for _, o := range outfits {
			if o.SuitsBodyShape(shape) {
				filtered = append(filtered, o)
			}
		}
		outfits = filtered
	}

	if err := SortOutfits(outfits, q.Sort, q.Seed); err != nil {
		return domain.OutfitPage{}, err
	}

	return Paginate(outfits, q.Page, q.PageSize), nil
}

// loadByGender reads through the cache. Cache failures fall back to the
// database and never fail the request.
func (s *catalogService) loadByGender(ctx context.Context, gender domain.Gender) ([]domain.Outfit, error) {
	key := string(gender)

	if s.cache != nil {
		cached, ok, err := s.cache.GetByGender(ctx, key)
		switch {
		case err != nil:
			metrics.OutfitCacheLookups.WithLabelValues("error").Inc()
			logger.Warn("Outfit cache read failed", "gender", key, "error", err.Error())
		case ok:
			metrics.OutfitCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.OutfitCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	outfits, err := s.outfitRepo.FindByGender(ctx, key)
	if err != nil {
		logger.Error("Failed to find outfits by gender", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetByGender(ctx, key, outfits); err != nil {
			logger.Warn("Outfit cache write failed", "gender", key, "error", err.Error())
		}
	}

	// callers sort in place; never hand out the slice that was cached
	out := make([]domain.Outfit, len(outfits))
	copy(out, outfits)
	return out, nil
}

func (s *catalogService) GetOutfitByID(ctx context.Context, id uint64) (domain.Outfit, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get outfit by id")
		return domain.Outfit{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("Invalid outfit id")
		return domain.Outfit{}, domain.ErrNotFound
	}

	outfit, err := s.outfitRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find outfit", err)
		return domain.Outfit{}, err
	}

	return outfit, nil
}

func (s *catalogService) CreateOutfit(ctx context.Context, outfit *domain.Outfit) (*domain.Outfit, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create outfit")
		return nil, fmt.Errorf("context error: %w", err)
	}

	g, err := domain.ParseGender(outfit.Gender)
	if err != nil {
		return nil, err
	}
	outfit.Gender = string(g)

	if strings.TrimSpace(outfit.Name) == "" {
		logger.Error("Invalid outfit data: name is required")
		return nil, errors.New("outfit name is required")
	}

	if outfit.Price < 0 {
		logger.Error("Invalid outfit data: negative price")
		return nil, errors.New("outfit price cannot be negative")
	}

	for i, shape := range outfit.BodyShapes {
		outfit.BodyShapes[i] = strings.ToLower(strings.TrimSpace(shape))
	}

	if err := s.outfitRepo.Create(ctx, outfit); err != nil {
		logger.Error("failed to create new outfit", err)
		return nil, fmt.Errorf("failed to create outfit: %w", err)
	}

	s.invalidate(ctx, outfit.Gender)
	logger.Info("outfit created successfully", "id", outfit.ID)

	return outfit, nil
}

func (s *catalogService) DeleteOutfit(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting outfit")
		return fmt.Errorf("context error: %w", err)
	}

	outfit, err := s.outfitRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("outfit not found", err)
		return err
	}

	if err := s.outfitRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete outfit", err)
		return fmt.Errorf("failed to delete outfit: %w", err)
	}

	s.invalidate(ctx, outfit.Gender)
	logger.Info("outfit deleted successfully", "id", id)

	return nil
}

func (s *catalogService) invalidate(ctx context.Context, gender string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, gender); err != nil {
		logger.Warn("Outfit cache invalidation failed", "gender", gender, "error", err.Error())
	}
}
