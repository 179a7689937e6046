package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

func interval(startHour, endHour int) domain.BookedInterval {
	return domain.BookedInterval{
		Start: time.Date(2025, 6, 1, startHour, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 1, endHour, 0, 0, 0, time.UTC),
		Kind:  domain.IntervalBooking,
	}
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, err := c.Get(ctx, "slots:1:2025-06-01")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "slots:1:2025-06-01", []domain.BookedInterval{interval(10, 11)}, time.Minute))

	got, err := c.Get(ctx, "slots:1:2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []domain.BookedInterval{interval(10, 11)}, got)

	// Возвращается копия
	got[0].Kind = domain.IntervalBlock
	again, _ := c.Get(ctx, "slots:1:2025-06-01")
	assert.Equal(t, domain.IntervalBooking, again[0].Kind)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []domain.BookedInterval{}, 30*time.Second))

	now = now.Add(29 * time.Second)
	_, err := c.Get(ctx, "k")
	assert.NoError(t, err)

	now = now.Add(time.Second)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.Equal(t, 1, c.Sweep())
	assert.Equal(t, 0, c.Sweep())
}

func TestMemoryCache_Append(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	ok, err := c.Append(ctx, "k", interval(10, 11))
	require.NoError(t, err)
	assert.False(t, ok, "без снапшота добавлять некуда")

	require.NoError(t, c.Set(ctx, "k", []domain.BookedInterval{interval(9, 10)}, time.Minute))

	ok, err = c.Append(ctx, "k", interval(15, 16))
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []domain.BookedInterval{interval(9, 10), interval(15, 16)}, got)
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", nil, time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
