package repos_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"estore/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	return db
}

func TestKVRepoMissingKey(t *testing.T) {
	kv := repos.NewKVRepo(memdb(t))

	v, ok, err := kv.Load("cart:nobody")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestKVRepoSaveLoadRoundTrip(t *testing.T) {
	kv := repos.NewKVRepo(memdb(t))

	require.NoError(t, kv.Save("cart:s1", []byte(`[{"id":"a","quantity":2}]`)))

	v, ok, err := kv.Load("cart:s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a","quantity":2}]`, string(v))
}

func TestKVRepoSaveOverwritesInFull(t *testing.T) {
	kv := repos.NewKVRepo(memdb(t))

	require.NoError(t, kv.Save("cart:s1", []byte(`[{"id":"a","quantity":2}]`)))
	require.NoError(t, kv.Save("cart:s1", []byte(`[]`)))

	v, ok, err := kv.Load("cart:s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(v))
}

func TestKVRepoKeysAreIndependent(t *testing.T) {
	kv := repos.NewKVRepo(memdb(t))

	require.NoError(t, kv.Save("cart:s1", []byte(`["one"]`)))
	require.NoError(t, kv.Save("cart:s2", []byte(`["two"]`)))

	v, ok, err := kv.Load("cart:s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["one"]`, string(v))
}
