package kvstore

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store, err := NewGormStore(db)
	require.NoError(t, err)
	return store
}

func TestGormStoreGetAbsentKeyReturnsNil(t *testing.T) {
	store := newTestStore(t)

	value, err := store.Get(context.Background(), "customers")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestGormStoreSetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"c-1","name":"Maria"}]`)
	require.NoError(t, store.Set(ctx, "customers", payload))

	got, err := store.Get(ctx, "customers")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestGormStoreSetOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sales", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "sales", []byte(`[{"id":"s-1"}]`)))

	got, err := store.Get(ctx, "sales")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"s-1"}]`), got)
}

func TestGormStoreSetAllWritesEveryKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "customers", []byte(`["stale"]`)))

	values := map[string][]byte{
		"customers": []byte(`[]`),
		"providers": []byte(`[{"id":"p-1"}]`),
		"accounts":  []byte(`[]`),
	}
	require.NoError(t, store.SetAll(ctx, values))

	for key, want := range values {
		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, got, "key %q", key)
	}
}

func TestGormStoreEmptyValueRoundTrips(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "payments", []byte{}))

	got, err := store.Get(ctx, "payments")
	require.NoError(t, err)
	assert.Empty(t, got)
}
