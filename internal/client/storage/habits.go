package storage

import (
	"context"

	"github.com/iudanet/consistency/internal/models"
)

//go:generate moq -out habits_mock.go . HabitStorage

// SaveOptions управляют записью коллекции.
type SaveOptions struct {
	// UpdatedAt логический timestamp записи (unix миллисекунды).
	// 0 означает "текущее время".
	UpdatedAt int64

	// Silent подавляет уведомление подписчиков. Используется при применении
	// входящего удаленного состояния, чтобы не запустить обратную синхронизацию.
	Silent bool
}

// HabitStorage defines interface for persisting the habit collection
type HabitStorage interface {
	// LoadHabits загружает коллекцию привычек. Поврежденные данные не являются
	// ошибкой: любой сбой разбора дает пустую коллекцию, а отдельные записи
	// восстанавливаются с дефолтами по полям.
	LoadHabits(ctx context.Context) (models.Collection, error)

	// SaveHabits атомарно записывает коллекцию целиком, проставляет логический
	// timestamp и, если не задан Silent, уведомляет подписчиков.
	SaveHabits(ctx context.Context, habits models.Collection, opts SaveOptions) error

	// Subscribe регистрирует наблюдателя несайлентных записей.
	// Наблюдатель получает новый логический timestamp.
	Subscribe(fn func(updatedAt int64))
}
