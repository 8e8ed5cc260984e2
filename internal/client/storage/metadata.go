package storage

import (
	"context"

	"github.com/iudanet/consistency/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for the local logical timestamp
type MetadataStorage interface {
	// GetLocalUpdatedAt возвращает логический timestamp последней локальной
	// записи. 0, если запись еще ни разу не выполнялась.
	GetLocalUpdatedAt(ctx context.Context) (int64, error)

	// SetLocalUpdatedAt записывает логический timestamp независимо от payload,
	// чтобы движок синхронизации мог сравнивать метки без десериализации коллекции.
	SetLocalUpdatedAt(ctx context.Context, updatedAt int64) error

	// EnsureLocalUpdatedAt гарантирует наличие базовой метки: если timestamp
	// еще не записан, а коллекция непуста (данные существовали до появления
	// синхронизации), однократно проставляет "сейчас". Возвращает действующую метку.
	EnsureLocalUpdatedAt(ctx context.Context, habits models.Collection) (int64, error)
}
