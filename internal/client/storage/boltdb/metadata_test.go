package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/consistency/internal/models"
)

func TestGetSetLocalUpdatedAt(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально метки нет — 0
	updatedAt, err := store.GetLocalUpdatedAt(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updatedAt)

	// Записываем и читаем обратно
	var expected int64 = 1709800000000
	require.NoError(t, store.SetLocalUpdatedAt(ctx, expected))

	got, err := store.GetLocalUpdatedAt(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestEnsureLocalUpdatedAt(t *testing.T) {
	habits := models.Collection{{ID: "h", Name: "чтение", CreatedAt: time.Now()}}

	t.Run("пустая коллекция без метки — остается 0", func(t *testing.T) {
		ctx := context.Background()
		store := createTestStorage(t)

		got, err := store.EnsureLocalUpdatedAt(ctx, models.Collection{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)

		// Метка не записана
		stored, err := store.GetLocalUpdatedAt(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stored)
	})

	t.Run("непустая коллекция без метки — базовая метка проставляется", func(t *testing.T) {
		ctx := context.Background()
		store := createTestStorage(t)

		before := time.Now().UnixMilli()
		got, err := store.EnsureLocalUpdatedAt(ctx, habits)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, before)

		// Повторный вызов возвращает ту же метку, не перезаписывая ее
		again, err := store.EnsureLocalUpdatedAt(ctx, habits)
		require.NoError(t, err)
		assert.Equal(t, got, again)
	})

	t.Run("существующая метка не трогается", func(t *testing.T) {
		ctx := context.Background()
		store := createTestStorage(t)

		require.NoError(t, store.SetLocalUpdatedAt(ctx, 12345))

		got, err := store.EnsureLocalUpdatedAt(ctx, habits)
		require.NoError(t, err)
		assert.Equal(t, int64(12345), got)
	})
}
