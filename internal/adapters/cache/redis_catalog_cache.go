package cache

import (
	"context"
	"errors"
	"fmt"
	"ride-plan-service/internal/domain"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const defaultCatalogKey = "rideplan:catalog:v1"

// cachedRide is the wire shape stored in Redis.
type cachedRide struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Thrill            int    `json:"thrill"`
	Duration          int    `json:"duration"`
	QueueTime         int    `json:"queue_time"`
	Fatigue           int    `json:"fatigue"`
	Mandatory         bool   `json:"mandatory"`
	Restricted        bool   `json:"restricted"`
	VIPAccess         bool   `json:"vip_access"`
	AffectedByWeather bool   `json:"affected_by_weather"`
	MinWeight         int    `json:"min_weight"`
	MaxWeight         int    `json:"max_weight"`
	MinAge            int    `json:"min_age"`
	MaxAge            int    `json:"max_age"`
}

// RedisCatalogCache stores whole catalog snapshots under a single key so
// several service instances share one warm copy.
type RedisCatalogCache struct {
	redis *redis.Client
	key   string
}

func NewRedisCatalogCache(client *redis.Client, key string) *RedisCatalogCache {
	if key == "" {
		key = defaultCatalogKey
	}
	return &RedisCatalogCache{redis: client, key: key}
}

func (c *RedisCatalogCache) Get(ctx context.Context) ([]domain.Ride, bool, error) {
	data, err := c.redis.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get catalog: %w", err)
	}

	var payload []cachedRide
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached catalog: %w", err)
	}

	rides := make([]domain.Ride, 0, len(payload))
	for _, p := range payload {
		rides = append(rides, domain.Ride{
			ID:                p.ID,
			Name:              p.Name,
			Type:              domain.RideType(p.Type),
			Thrill:            p.Thrill,
			Duration:          p.Duration,
			QueueTime:         p.QueueTime,
			Fatigue:           p.Fatigue,
			Mandatory:         p.Mandatory,
			Restricted:        p.Restricted,
			VIPAccess:         p.VIPAccess,
			AffectedByWeather: p.AffectedByWeather,
			MinWeight:         p.MinWeight,
			MaxWeight:         p.MaxWeight,
			MinAge:            p.MinAge,
			MaxAge:            p.MaxAge,
		})
	}

	return rides, true, nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, rides []domain.Ride, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	payload := make([]cachedRide, 0, len(rides))
	for _, r := range rides {
		payload = append(payload, cachedRide{
			ID:                r.ID,
			Name:              r.Name,
			Type:              string(r.Type),
			Thrill:            r.Thrill,
			Duration:          r.Duration,
			QueueTime:         r.QueueTime,
			Fatigue:           r.Fatigue,
			Mandatory:         r.Mandatory,
			Restricted:        r.Restricted,
			VIPAccess:         r.VIPAccess,
			AffectedByWeather: r.AffectedByWeather,
			MinWeight:         r.MinWeight,
			MaxWeight:         r.MaxWeight,
			MinAge:            r.MinAge,
			MaxAge:            r.MaxAge,
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal catalog for cache: %w", err)
	}

	if err := c.redis.Set(ctx, c.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set catalog: %w", err)
	}

	return nil
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.redis.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("redis del catalog: %w", err)
	}
	return nil
}
