package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyBee3443/biogenius-sub001/internal/store"
)

// testKVContract asserts the behavior every KV backend must share.
func testKVContract(t *testing.T, kv store.KV) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent key returns nil without error", func(t *testing.T) {
		raw, err := kv.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		require.NoError(t, kv.Put(ctx, store.KeyArticles, []byte(`[{"id":"a1"}]`)))

		raw, err := kv.Get(ctx, store.KeyArticles)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"a1"}]`, string(raw))
	})

	t.Run("put overwrites the whole blob", func(t *testing.T) {
		require.NoError(t, kv.Put(ctx, store.KeyNotes, []byte(`[1,2,3]`)))
		require.NoError(t, kv.Put(ctx, store.KeyNotes, []byte(`[]`)))

		raw, err := kv.Get(ctx, store.KeyNotes)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(raw))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, kv.Put(ctx, store.KeyRoles, []byte(`["r"]`)))

		raw, err := kv.Get(ctx, store.KeyUsers)
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("ping succeeds on an open store", func(t *testing.T) {
		assert.NoError(t, kv.Ping(ctx))
	})
}

func TestSQLite_KVContract(t *testing.T) {
	kv, err := store.OpenSQLite(filepath.Join(t.TempDir(), "contract.db"))
	require.NoError(t, err)
	defer kv.Close()

	testKVContract(t, kv)
}

func TestSQLite_ReopenSeesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	first, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, store.KeyPages, []byte(`["p"]`)))
	require.NoError(t, first.Close())

	second, err := store.OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	raw, err := second.Get(ctx, store.KeyPages)
	require.NoError(t, err)
	assert.Equal(t, `["p"]`, string(raw))
}
