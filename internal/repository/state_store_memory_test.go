package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStateStore(t *testing.T) {
	store := NewMemoryStateStore()
	ctx := context.Background()

	val, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, store.Set(ctx, "key", []byte("value"), 0))
	val, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), val)

	require.NoError(t, store.Delete(ctx, "key"))
	val, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Nil(t, val)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "key"))
}

func TestMemoryStateStore_TTL(t *testing.T) {
	store := NewMemoryStateStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "short", []byte("v"), 20*time.Millisecond))

	val, err := store.Get(ctx, "short")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	time.Sleep(30 * time.Millisecond)

	val, err = store.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, val)
}
