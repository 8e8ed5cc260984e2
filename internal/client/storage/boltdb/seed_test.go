package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/consistency/internal/client/storage"
)

func TestSeedStorage(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// До сохранения — ErrSeedNotFound
	_, err := store.GetSeed(ctx)
	assert.ErrorIs(t, err, storage.ErrSeedNotFound)

	// Сохраняем и читаем обратно
	require.NoError(t, store.SaveSeed(ctx, "amber-atlas quiet-ocean"))

	phrase, err := store.GetSeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "amber-atlas quiet-ocean", phrase)

	// Перезапись заменяет фразу
	require.NoError(t, store.SaveSeed(ctx, "golden-falcon misty-ridge"))
	phrase, err = store.GetSeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "golden-falcon misty-ridge", phrase)

	// Удаление забывает фразу
	require.NoError(t, store.DeleteSeed(ctx))
	_, err = store.GetSeed(ctx)
	assert.ErrorIs(t, err, storage.ErrSeedNotFound)

	// Повторное удаление — no-op
	require.NoError(t, store.DeleteSeed(ctx))
}
