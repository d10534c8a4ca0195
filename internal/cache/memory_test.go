package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	payload := []byte(`[{"id":1,"product_name":"casque"}]`)
	require.NoError(t, store.Set(ctx, CatalogKey, payload, CatalogTTL))

	got, err := store.Get(ctx, CatalogKey)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Deux lectures dans la fenêtre : octets identiques
	again, err := store.Get(ctx, CatalogKey)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemory()

	_, err := store.Get(context.Background(), "absente")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CatalogKey, []byte("v"), CatalogTTL))
	require.NoError(t, store.Delete(ctx, CatalogKey))

	_, err := store.Get(ctx, CatalogKey)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreIncrWindow(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := store.Incr(ctx, "login_attempts:a@b.fr", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	// Nouvelle fenêtre : le compteur repart de 1
	count, err := store.Incr(ctx, "brève", 5*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	time.Sleep(10 * time.Millisecond)
	count, err = store.Incr(ctx, "brève", 5*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
