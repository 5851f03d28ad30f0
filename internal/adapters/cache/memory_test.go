package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomurakami/murakams-home/internal/domain"
)

func TestMemory_GetMiss(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemory_SetAndGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "github:repos", []byte(`[{"name":"x"}]`), time.Minute))

	value, err := m.Get(ctx, "github:repos")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"name":"x"}]`), value)
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "key", []byte("value"), time.Minute))

	// Still fresh
	_, err := m.Get(ctx, "key")
	require.NoError(t, err)

	// Advance past TTL
	now = now.Add(2 * time.Minute)

	_, err = m.Get(ctx, "key")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemory_ZeroTTLNeverExpires(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "key", []byte("value"), 0))

	now = now.Add(24 * time.Hour)

	value, err := m.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}

func TestMemory_Overwrite(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "key", []byte("old"), time.Minute))
	require.NoError(t, m.Set(ctx, "key", []byte("new"), time.Minute))

	value, err := m.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}
