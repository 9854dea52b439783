package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_LoadMissing(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	_, err = f.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFile_SaveAndLoad(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, []byte(`{"lastId":30}`)))

	data, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"lastId":30}`, string(data))
}

func TestFile_SaveOverwrites(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, []byte("first")))
	require.NoError(t, f.Save(ctx, []byte("second")))

	data, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestFile_CreatesNestedDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "db.json")
	f, err := NewFile(path)
	require.NoError(t, err)

	require.NoError(t, f.Save(context.Background(), []byte("x")))

	data, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Save(ctx, []byte("doc")))

	data, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "doc", string(data))

	// The returned slice is a copy.
	data[0] = 'x'
	again, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "doc", string(again))
}
