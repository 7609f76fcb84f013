package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltKVStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.data")

	store, err := NewBoltKVStore(path, "snapshots")
	require.NoError(t, err)
	defer store.Close()

	data, err := store.ReadKey([]byte("octocat"))
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.UpdateKey([]byte("octocat"), []byte("payload")))

	data, err = store.ReadKey([]byte("octocat"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	require.NoError(t, store.UpdateKey([]byte("octocat"), []byte("payload2")))
	data, err = store.ReadKey([]byte("octocat"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload2"), data)
}
