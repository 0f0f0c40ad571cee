package repository

import (
	"context"
	"sync/atomic"
	"time"

	"roombook/internal/domain"
	"roombook/internal/models"

	"github.com/rs/zerolog"
)

// FailoverCache serves from the primary (Redis) until it errors, then
// falls back to memory and probes the primary again after a minute.
type FailoverCache struct {
	primary   domain.Cache
	fallback  domain.Cache
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck atomic.Int64
}

func NewFailoverCache(primary, fallback domain.Cache, logger *zerolog.Logger) *FailoverCache {
	return &FailoverCache{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (c *FailoverCache) markDown(err error) {
	c.logger.Error().Err(err).Msg("primary cache failed, falling back to memory")
	c.isDown.Store(true)
	c.lastCheck.Store(time.Now().UnixNano())
}

func (c *FailoverCache) shouldProbe() bool {
	return time.Since(time.Unix(0, c.lastCheck.Load())) > time.Minute
}

func (c *FailoverCache) GetRooms(ctx context.Context) ([]models.Room, error) {
	if !c.isDown.Load() {
		rooms, err := c.primary.GetRooms(ctx)
		if err == nil {
			return rooms, nil
		}
		c.markDown(err)
	} else if c.shouldProbe() {
		rooms, err := c.primary.GetRooms(ctx)
		if err == nil {
			c.isDown.Store(false)
			return rooms, nil
		}
		c.lastCheck.Store(time.Now().UnixNano())
	}

	return c.fallback.GetRooms(ctx)
}

func (c *FailoverCache) SetRooms(ctx context.Context, rooms []models.Room) error {
	if !c.isDown.Load() {
		err := c.primary.SetRooms(ctx, rooms)
		if err == nil {
			return nil
		}
		c.markDown(err)
	}

	return c.fallback.SetRooms(ctx, rooms)
}

func (c *FailoverCache) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if !c.isDown.Load() {
		allowed, err := c.primary.CheckRateLimit(ctx, key, limit, window)
		if err == nil {
			return allowed, nil
		}
		c.markDown(err)
	}

	return c.fallback.CheckRateLimit(ctx, key, limit, window)
}
