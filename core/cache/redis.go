package cache

import (
	"context"
	"fmt"
	"time"

	"gridmeet/core/config"
	"gridmeet/core/constants"
	"gridmeet/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache holds the service's Redis-backed concerns: the denormalized heatmap
// snapshot per event and the response-change notification channel.
type Cache interface {
	SetHeatmapSnapshot(ctx context.Context, eventID string, payload []byte) error
	GetHeatmapSnapshot(ctx context.Context, eventID string) ([]byte, error)
	DeleteHeatmapSnapshot(ctx context.Context, eventID string) error

	PublishResponseChange(ctx context.Context, eventID string) error
	SubscribeResponseChanges(ctx context.Context, eventID string) (<-chan struct{}, func())

	Close() error
}

type redisCache struct {
	client *redis.Client
}

func NewCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Error("Cache:NewCache:Ping", "error", err, "addr", cfg.Addr)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis cache initialized", "addr", cfg.Addr, "db", cfg.DB)
	return &redisCache{client: client}, nil
}

func snapshotKey(eventID string) string {
	return constants.HeatmapSnapshotKeyPrefix + eventID
}

func responseChannel(eventID string) string {
	return constants.ResponseChannelPrefix + eventID + constants.ResponseChannelSuffix
}

func (c *redisCache) SetHeatmapSnapshot(ctx context.Context, eventID string, payload []byte) error {
	ttl := time.Duration(constants.HeatmapSnapshotTTLMinutes) * time.Minute
	return c.client.Set(ctx, snapshotKey(eventID), payload, ttl).Err()
}

func (c *redisCache) GetHeatmapSnapshot(ctx context.Context, eventID string) ([]byte, error) {
	payload, err := c.client.Get(ctx, snapshotKey(eventID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return payload, err
}

func (c *redisCache) DeleteHeatmapSnapshot(ctx context.Context, eventID string) error {
	return c.client.Del(ctx, snapshotKey(eventID)).Err()
}

func (c *redisCache) PublishResponseChange(ctx context.Context, eventID string) error {
	return c.client.Publish(ctx, responseChannel(eventID), "changed").Err()
}

// SubscribeResponseChanges delivers an advisory signal per published change.
// The channel has capacity 1 and drops while the receiver is behind, so
// bursts coalesce; subscribers re-fetch, they never read state off the wire.
// The returned func tears the subscription down.
func (c *redisCache) SubscribeResponseChanges(ctx context.Context, eventID string) (<-chan struct{}, func()) {
	pubsub := c.client.Subscribe(ctx, responseChannel(eventID))
	notify := make(chan struct{}, 1)

	go func() {
		defer close(notify)
		for range pubsub.Channel() {
			select {
			case notify <- struct{}{}:
			default:
			}
		}
	}()

	cancel := func() {
		if err := pubsub.Close(); err != nil {
			logger.Warn("Cache:SubscribeResponseChanges:Close", "error", err, "event_id", eventID)
		}
	}
	return notify, cancel
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
