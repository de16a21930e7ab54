package cart

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"chronokart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_LoadMissingFileReturnsNil(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "cart.json"), zerolog.Nop())

	snap, err := storage.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestFileStorage_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "cart.json")
	storage := NewFileStorage(path, zerolog.Nop())
	ctx := context.Background()

	snap := Snapshot{
		Items: []LineItem{
			{
				Product:  testProduct("W001", 4500),
				Color:    model.ColorSelection{Name: "Black", Color: "#000000"},
				Quantity: 2,
			},
		},
	}
	require.NoError(t, storage.Save(ctx, snap))

	loaded, err := storage.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "W001", loaded.Items[0].Product.ID)
	assert.Equal(t, "Black", loaded.Items[0].Color.Name)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
}

func TestFileStorage_LoadCorruptFileReturnsPersistenceError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	storage := NewFileStorage(path, zerolog.Nop())
	snap, err := storage.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.Contains(t, err.Error(), model.ErrCodePersistence)
}

func TestFileStorage_SaveLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cart.json")
	storage := NewFileStorage(path, zerolog.Nop())

	require.NoError(t, storage.Save(context.Background(), Snapshot{}))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
