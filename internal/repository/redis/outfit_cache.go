package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"auraSync/business/catalog"
	"auraSync/domain"

	"github.com/redis/go-redis/v9"
)

type OutfitCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ catalog.OutfitCache = (*OutfitCache)(nil)

func NewOutfitCache(client *redis.Client, ttl time.Duration) *OutfitCache {
	return &OutfitCache{
		client: client,
		ttl:    ttl,
	}
}

func outfitKey(gender string) string {
	// key format: "outfits:gender:{gender}"
	return fmt.Sprintf("outfits:gender:%s", gender)
}

// GetByGender reports a miss with ok=false and a nil error.
func (c *OutfitCache) GetByGender(ctx context.Context, gender string) ([]domain.Outfit, bool, error) {
	val, err := c.client.Get(ctx, outfitKey(gender)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get outfits from Redis: %w", err)
	}

	var outfits []domain.Outfit
	if err := json.Unmarshal(val, &outfits); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached outfits: %w", err)
	}

	return outfits, true, nil
}

func (c *OutfitCache) SetByGender(ctx context.Context, gender string, outfits []domain.Outfit) error {
	jsonData, err := json.Marshal(outfits)
	if err != nil {
		return fmt.Errorf("failed to marshal outfits: %w", err)
	}

	if err := c.client.Set(ctx, outfitKey(gender), jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store outfits in Redis: %w", err)
	}

	return nil
}

func (c *OutfitCache) Invalidate(ctx context.Context, gender string) error {
	if err := c.client.Del(ctx, outfitKey(gender)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate outfits: %w", err)
	}
	return nil
}
