package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

// ErrInvalidSize возвращается при неположительном размере LRU
var ErrInvalidSize = errors.New("cache: lru size must be positive")

// LRUCache кэш расписания в памяти процесса
type LRUCache struct {
	cache   *expirable.LRU[string, []byte]
	version atomic.Uint64
	logger  Logger
	metrics Metrics
}

// NewLRUCache создает кэш на size ключей; ttl <= 0 означает хранение до вытеснения
func NewLRUCache(size int, ttl time.Duration, logger Logger, m Metrics) (*LRUCache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if ttl < 0 {
		ttl = 0
	}

	return &LRUCache{
		cache:   expirable.NewLRU[string, []byte](size, nil, ttl),
		logger:  logger,
		metrics: metricsOrNoop(m),
	}, nil
}

// Version текущее поколение кэша
func (c *LRUCache) Version(_ context.Context) (uint64, bool) {
	return c.version.Load(), true
}

func (c *LRUCache) GetHours(_ context.Context, version uint64) ([]domain.BusinessHours, bool) {
	key := hoursKey(version)

	data, ok := c.cache.Get(key)
	if !ok {
		c.metrics.ObserveCache(kindHours, false)
		return nil, false
	}

	hours, err := decodeHours(data)
	if err != nil {
		c.logger.Warn("cache: drop corrupted hours entry: %v", err)
		c.cache.Remove(key)
		c.metrics.ObserveCache(kindHours, false)
		return nil, false
	}

	c.metrics.ObserveCache(kindHours, true)
	return hours, true
}

func (c *LRUCache) SetHours(_ context.Context, version uint64, hours []domain.BusinessHours) {
	if version != c.version.Load() {
		return
	}
	data, err := encode(hours)
	if err != nil {
		c.logger.Warn("cache: encode hours: %v", err)
		return
	}
	c.cache.Add(hoursKey(version), data)
}

func (c *LRUCache) GetOffDays(_ context.Context, version uint64, from, to time.Time) ([]domain.OffDay, bool) {
	key := offDaysKey(version, from, to)

	data, ok := c.cache.Get(key)
	if !ok {
		c.metrics.ObserveCache(kindOffDays, false)
		return nil, false
	}

	offDays, err := decodeOffDays(data)
	if err != nil {
		c.logger.Warn("cache: drop corrupted entry %s: %v", key, err)
		c.cache.Remove(key)
		c.metrics.ObserveCache(kindOffDays, false)
		return nil, false
	}

	c.metrics.ObserveCache(kindOffDays, true)
	return offDays, true
}

func (c *LRUCache) SetOffDays(_ context.Context, version uint64, from, to time.Time, offDays []domain.OffDay) {
	if version != c.version.Load() {
		return
	}
	data, err := encode(offDays)
	if err != nil {
		c.logger.Warn("cache: encode off-days: %v", err)
		return
	}
	c.cache.Add(offDaysKey(version, from, to), data)
}

// Invalidate переходит на новое поколение и сбрасывает записи
func (c *LRUCache) Invalidate(_ context.Context) error {
	c.version.Add(1)
	c.cache.Purge()
	return nil
}
