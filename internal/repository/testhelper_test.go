package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babyBee3443/biogenius-sub001/internal/store"
)

// newTestKV opens a throwaway SQLite store in a temp directory. The KV
// contract is identical across drivers, so repository behavior tested here
// holds for the postgres backend too.
func newTestKV(t *testing.T) store.KV {
	t.Helper()

	kv, err := store.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = kv.Close()
	})
	return kv
}
