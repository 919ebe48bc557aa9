package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_SetGetDelete(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	_, err := kv.Get(ctx, "absent")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, kv.Set(ctx, "k", "v", 0))
	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryKV_TTLExpiry(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "short", "v", 10*time.Millisecond))

	v, err := kv.Get(ctx, "short")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	time.Sleep(25 * time.Millisecond)
	_, err = kv.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryKV_DeleteAbsentIsNoop(t *testing.T) {
	kv := NewMemoryKV()
	assert.NoError(t, kv.Delete(context.Background(), "absent"))
}
