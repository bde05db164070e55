package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

type scheduleCache interface {
	Version(ctx context.Context) (uint64, bool)
	GetHours(ctx context.Context, version uint64) ([]domain.BusinessHours, bool)
	SetHours(ctx context.Context, version uint64, hours []domain.BusinessHours)
	GetOffDays(ctx context.Context, version uint64, from, to time.Time) ([]domain.OffDay, bool)
	SetOffDays(ctx context.Context, version uint64, from, to time.Time, offDays []domain.OffDay)
	Invalidate(ctx context.Context) error
}

type countingMetrics struct {
	hits, misses map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{hits: map[string]int{}, misses: map[string]int{}}
}

func (m *countingMetrics) ObserveCache(kind string, hit bool) {
	if hit {
		m.hits[kind]++
	} else {
		m.misses[kind]++
	}
}

func newRedisCache(t *testing.T, m Metrics) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, "test:schedule", time.Minute, logger.Nop(), m), srv
}

func newLRU(t *testing.T, m Metrics) *LRUCache {
	t.Helper()
	c, err := NewLRUCache(16, time.Minute, logger.Nop(), m)
	require.NoError(t, err)
	return c
}

func october() (time.Time, time.Time) {
	return time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
}

func runContract(t *testing.T, c scheduleCache, m *countingMetrics) {
	ctx := context.Background()
	from, to := october()

	version, ok := c.Version(ctx)
	require.True(t, ok)

	_, ok = c.GetHours(ctx, version)
	assert.False(t, ok)

	c.SetHours(ctx, version, domain.DefaultBusinessHours())
	hours, ok := c.GetHours(ctx, version)
	require.True(t, ok)
	assert.Len(t, hours, 7)
	assert.Equal(t, "10:00", hours[time.Saturday].OpenTime.String())

	reason := "санитарный день"
	c.SetOffDays(ctx, version, from, to, []domain.OffDay{{ID: 1, Date: time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC), Reason: &reason}})
	offDays, ok := c.GetOffDays(ctx, version, from, to)
	require.True(t, ok)
	require.Len(t, offDays, 1)
	assert.Equal(t, "2026-10-21", offDays[0].DateKey())

	// другой диапазон это другой ключ
	_, ok = c.GetOffDays(ctx, version, from, from)
	assert.False(t, ok)

	require.NoError(t, c.Invalidate(ctx))
	next, ok := c.Version(ctx)
	require.True(t, ok)
	assert.Equal(t, version+1, next)

	_, ok = c.GetHours(ctx, next)
	assert.False(t, ok)
	_, ok = c.GetOffDays(ctx, next, from, to)
	assert.False(t, ok)

	assert.Equal(t, 1, m.hits[kindHours])
	assert.Equal(t, 2, m.misses[kindHours])
	assert.Equal(t, 1, m.hits[kindOffDays])
	assert.Equal(t, 2, m.misses[kindOffDays])
}

// Читатель взял поколение и пошёл в БД, админ изменил данные и сбросил кэш,
// затем читатель сохраняет старые данные: следующий запрос их не увидит.
func runStaleWrite(t *testing.T, c scheduleCache) {
	ctx := context.Background()
	from, to := october()

	version, ok := c.Version(ctx)
	require.True(t, ok)

	require.NoError(t, c.Invalidate(ctx))

	c.SetHours(ctx, version, domain.DefaultBusinessHours())
	c.SetOffDays(ctx, version, from, to, []domain.OffDay{{ID: 1, Date: time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)}})

	current, ok := c.Version(ctx)
	require.True(t, ok)
	_, ok = c.GetHours(ctx, current)
	assert.False(t, ok)
	_, ok = c.GetOffDays(ctx, current, from, to)
	assert.False(t, ok)
}

func TestLRUCache_Contract(t *testing.T) {
	m := newCountingMetrics()
	runContract(t, newLRU(t, m), m)
}

func TestRedisCache_Contract(t *testing.T) {
	m := newCountingMetrics()
	c, _ := newRedisCache(t, m)
	runContract(t, c, m)
}

func TestLRUCache_StaleWriteAfterInvalidate(t *testing.T) {
	runStaleWrite(t, newLRU(t, nil))
}

func TestRedisCache_StaleWriteAfterInvalidate(t *testing.T) {
	c, _ := newRedisCache(t, nil)
	runStaleWrite(t, c)
}

func TestLRUCache_ReturnsCopies(t *testing.T) {
	c := newLRU(t, nil)
	ctx := context.Background()

	hours := domain.DefaultBusinessHours()
	c.SetHours(ctx, 0, hours)
	hours[1].IsOpen = false

	cached, ok := c.GetHours(ctx, 0)
	require.True(t, ok)
	assert.True(t, cached[1].IsOpen)
}

func TestNewLRUCache_InvalidSize(t *testing.T) {
	_, err := NewLRUCache(0, time.Minute, logger.Nop(), nil)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestRedisCache_TTL(t *testing.T) {
	c, srv := newRedisCache(t, nil)
	ctx := context.Background()

	c.SetHours(ctx, 0, domain.DefaultBusinessHours())
	assert.Equal(t, time.Minute, srv.TTL("test:schedule:v0:hours"))

	srv.FastForward(2 * time.Minute)
	_, ok := c.GetHours(ctx, 0)
	assert.False(t, ok)
}

func TestRedisCache_InvalidateKeepsForeignKeys(t *testing.T) {
	c, srv := newRedisCache(t, nil)
	ctx := context.Background()

	require.NoError(t, srv.Set("other:key", "value"))
	c.SetHours(ctx, 0, domain.DefaultBusinessHours())

	require.NoError(t, c.Invalidate(ctx))

	assert.False(t, srv.Exists("test:schedule:v0:hours"))
	assert.True(t, srv.Exists("other:key"))

	version, err := srv.Get("test:schedule:version")
	require.NoError(t, err)
	assert.Equal(t, "1", version)
}

func TestRedisCache_UnavailableIsMiss(t *testing.T) {
	c, srv := newRedisCache(t, nil)
	ctx := context.Background()
	srv.Close()

	_, ok := c.Version(ctx)
	assert.False(t, ok)

	c.SetHours(ctx, 0, domain.DefaultBusinessHours())
	_, ok = c.GetHours(ctx, 0)
	assert.False(t, ok)
	assert.Error(t, c.Invalidate(ctx))
}

func TestRedisCache_CorruptedEntryIsMiss(t *testing.T) {
	c, srv := newRedisCache(t, nil)
	require.NoError(t, srv.Set("test:schedule:v0:hours", "{not json"))

	_, ok := c.GetHours(context.Background(), 0)
	assert.False(t, ok)
}
