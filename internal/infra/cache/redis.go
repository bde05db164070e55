package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

const scanBatch = 100

// RedisCache кэш расписания, общий для всех экземпляров сервиса.
// Ошибки Redis не прерывают запрос: чтение считается промахом, запись пропускается.
type RedisCache struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	logger  Logger
	metrics Metrics
}

// NewRedisCache создает кэш с префиксом ключей prefix
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration, logger Logger, m Metrics) *RedisCache {
	if prefix == "" {
		prefix = "salon:schedule"
	}
	return &RedisCache{
		client:  client,
		prefix:  prefix,
		ttl:     ttl,
		logger:  logger,
		metrics: metricsOrNoop(m),
	}
}

func (c *RedisCache) key(name string) string {
	return c.prefix + ":" + name
}

func (c *RedisCache) get(ctx context.Context, kind, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache: redis get %s: %v", key, err)
		}
		c.metrics.ObserveCache(kind, false)
		return nil, false
	}
	return data, true
}

func (c *RedisCache) set(ctx context.Context, key string, v interface{}) {
	data, err := encode(v)
	if err != nil {
		c.logger.Warn("cache: encode %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache: redis set %s: %v", key, err)
	}
}

// Version текущее поколение кэша. Отсутствующий ключ это поколение 0;
// при недоступном Redis кэш не используется.
func (c *RedisCache) Version(ctx context.Context) (uint64, bool) {
	version, err := c.client.Get(ctx, c.key(keyVersion)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, true
		}
		c.logger.Warn("cache: redis get version: %v", err)
		return 0, false
	}
	return version, true
}

func (c *RedisCache) GetHours(ctx context.Context, version uint64) ([]domain.BusinessHours, bool) {
	data, ok := c.get(ctx, kindHours, hoursKey(version))
	if !ok {
		return nil, false
	}

	hours, err := decodeHours(data)
	if err != nil {
		c.logger.Warn("cache: decode hours: %v", err)
		c.metrics.ObserveCache(kindHours, false)
		return nil, false
	}

	c.metrics.ObserveCache(kindHours, true)
	return hours, true
}

func (c *RedisCache) SetHours(ctx context.Context, version uint64, hours []domain.BusinessHours) {
	c.set(ctx, hoursKey(version), hours)
}

func (c *RedisCache) GetOffDays(ctx context.Context, version uint64, from, to time.Time) ([]domain.OffDay, bool) {
	key := offDaysKey(version, from, to)

	data, ok := c.get(ctx, kindOffDays, key)
	if !ok {
		return nil, false
	}

	offDays, err := decodeOffDays(data)
	if err != nil {
		c.logger.Warn("cache: decode %s: %v", key, err)
		c.metrics.ObserveCache(kindOffDays, false)
		return nil, false
	}

	c.metrics.ObserveCache(kindOffDays, true)
	return offDays, true
}

func (c *RedisCache) SetOffDays(ctx context.Context, version uint64, from, to time.Time, offDays []domain.OffDay) {
	c.set(ctx, offDaysKey(version, from, to), offDays)
}

// Invalidate увеличивает поколение и удаляет записи с префиксом кэша.
// Ключ поколения не удаляется и не истекает.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	versionKey := c.key(keyVersion)
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("cache: bump version: %w", err)
	}

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+":*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("cache: scan keys: %w", err)
		}

		stale := make([]string, 0, len(keys))
		for _, key := range keys {
			if key != versionKey {
				stale = append(stale, key)
			}
		}
		if len(stale) > 0 {
			if err := c.client.Del(ctx, stale...).Err(); err != nil {
				return fmt.Errorf("cache: delete keys: %w", err)
			}
		}

		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// PingContext проверяет доступность Redis
func (c *RedisCache) PingContext(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
