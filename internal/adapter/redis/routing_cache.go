// Package redis provides a read-through cache of the reaction routing
// lookups. Entries are namespaced by a generation counter: bumping it
// invalidates every cached route at once.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

const (
	defaultPrefix = "duck:"
	generationKey = "routing:generation"
)

type poleLister interface {
	ListByRolesChannel(ctx context.Context, channelID string) ([]domain.Pole, error)
}

type thematicFinder interface {
	GetByEmoji(ctx context.Context, poleID uuid.UUID, emojiKey string) (*domain.Thematic, error)
}

// RoutingCache caches channel -> poles and (pole, emoji) -> thematic lookups,
// misses included. Redis failures fall back to the underlying store.
type RoutingCache struct {
	client    *redis.Client
	poles     poleLister
	thematics thematicFinder
	ttl       time.Duration
	prefix    string
	log       *slog.Logger
}

// NewClient parses redisURL and checks the connection.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, nil
}

// NewRoutingCache wraps the routing lookups of poles and thematics.
func NewRoutingCache(client *redis.Client, poles poleLister, thematics thematicFinder, ttl time.Duration, log *slog.Logger) *RoutingCache {
	return &RoutingCache{
		client:    client,
		poles:     poles,
		thematics: thematics,
		ttl:       ttl,
		prefix:    defaultPrefix,
		log:       log.With("adapter", "redis"),
	}
}

// cachedThematic is the stored form of a lookup. Found is false for a miss.
type cachedThematic struct {
	Found    bool             `json:"found"`
	Thematic *domain.Thematic `json:"thematic,omitempty"`
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// ListByRolesChannel returns the Poles bound to channelID.
func (c *RoutingCache) ListByRolesChannel(ctx context.Context, channelID string) ([]domain.Pole, error) {
	gen, ok := c.generation(ctx)
	if ok {
		var poles []domain.Pole
		if c.get(ctx, c.key(gen, "chan", channelID), &poles) {
			return poles, nil
		}
	}

	poles, err := c.poles.ListByRolesChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if ok {
		c.set(ctx, c.key(gen, "chan", channelID), poles)
	}
	return poles, nil
}

// GetByEmoji returns the Thematic of poleID bound to emojiKey, or
// domain.ErrNotFound.
func (c *RoutingCache) GetByEmoji(ctx context.Context, poleID uuid.UUID, emojiKey string) (*domain.Thematic, error) {
	gen, ok := c.generation(ctx)
	key := c.key(gen, "emoji", poleID.String()+":"+emojiKey)
	if ok {
		var cached cachedThematic
		if c.get(ctx, key, &cached) {
			if !cached.Found {
				return nil, fmt.Errorf("thematic %s: %w", emojiKey, domain.ErrNotFound)
			}
			return cached.Thematic, nil
		}
	}

	t, err := c.thematics.GetByEmoji(ctx, poleID, emojiKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if ok {
			c.set(ctx, key, cachedThematic{Found: false})
		}
		return nil, err
	case err != nil:
		return nil, err
	}

	if ok {
		c.set(ctx, key, cachedThematic{Found: true, Thematic: t})
	}
	return t, nil
}

// ---------------------------------------------------------------------------
// Invalidation
// ---------------------------------------------------------------------------

// Invalidate drops every cached route by moving to a new generation.
func (c *RoutingCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.prefix+generationKey).Err(); err != nil {
		return fmt.Errorf("bump routing generation: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (c *RoutingCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// generation returns the current generation. ok is false when Redis is
// unavailable, in which case the cache is bypassed.
func (c *RoutingCache) generation(ctx context.Context) (int64, bool) {
	gen, err := c.client.Get(ctx, c.prefix+generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		c.log.WarnContext(ctx, "routing cache unavailable", slog.String("error", err.Error()))
		return 0, false
	}
	return gen, true
}

func (c *RoutingCache) key(gen int64, kind, id string) string {
	return fmt.Sprintf("%sroute:%d:%s:%s", c.prefix, gen, kind, id)
}

func (c *RoutingCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "routing cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.WarnContext(ctx, "routing cache entry corrupted", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (c *RoutingCache) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.WarnContext(ctx, "routing cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "routing cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
