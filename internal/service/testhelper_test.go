package service_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babyBee3443/biogenius-sub001/internal/store"
)

func newTestKV(t *testing.T) store.KV {
	t.Helper()

	kv, err := store.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = kv.Close()
	})
	return kv
}
