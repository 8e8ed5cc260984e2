package storage

import "context"

//go:generate moq -out seed_mock.go . SeedStorage

// SeedStorage defines interface for the locally remembered seed phrase
type SeedStorage interface {
	// SaveSeed сохраняет фразу (вызывающий передает нормализованную форму)
	SaveSeed(ctx context.Context, phrase string) error

	// GetSeed возвращает сохраненную фразу.
	// Возвращает ErrSeedNotFound, если фраза не сохранена.
	GetSeed(ctx context.Context) (string, error)

	// DeleteSeed забывает сохраненную фразу
	DeleteSeed(ctx context.Context) error
}
