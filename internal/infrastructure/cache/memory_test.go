package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "summary:abc", `{"gist":"short"}`, time.Minute))

	val, ok, err := ms.Get(ctx, "summary:abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"gist":"short"}`, val)
}

func TestMemoryStore_MissAndExpiry(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := ms.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, ms.Set(ctx, "short-lived", "v", -time.Second))
	_, ok, err = ms.Get(ctx, "short-lived")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStore_Delete(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, ms.Delete(ctx, "k"))

	_, ok, err := ms.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}
