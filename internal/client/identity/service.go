// Package identity управляет локально запомненной seed-фразой — identity
// пользователя в протоколе синхронизации. Сама фраза наружу не показывается:
// для сверки устройств используется короткий код аккаунта.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/consistency/internal/client/storage"
	"github.com/iudanet/consistency/internal/seed"
)

// Service предоставляет операции над запомненной seed-фразой
type Service struct {
	seeds storage.SeedStorage
}

// NewService creates a new identity service
func NewService(seeds storage.SeedStorage) *Service {
	return &Service{seeds: seeds}
}

// Generate создает новую seed-фразу, не сохраняя ее:
// пользователь должен сначала записать фразу, потом подтвердить сохранение
func (s *Service) Generate(words int) (string, error) {
	return seed.Generate(words)
}

// SetSeed нормализует и запоминает фразу. Возвращает короткий код аккаунта
// для визуальной сверки с другим устройством.
func (s *Service) SetSeed(ctx context.Context, phrase string) (string, error) {
	normalized := seed.Normalize(phrase)
	if normalized == "" {
		return "", fmt.Errorf("seed phrase cannot be empty")
	}

	if err := s.seeds.SaveSeed(ctx, normalized); err != nil {
		return "", fmt.Errorf("failed to save seed: %w", err)
	}

	return seed.Fragment(normalized), nil
}

// Fragment возвращает короткий код аккаунта текущей фразы.
// Пустая строка — фраза не сохранена.
func (s *Service) Fragment(ctx context.Context) (string, error) {
	phrase, err := s.seeds.GetSeed(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSeedNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get seed: %w", err)
	}

	return seed.Fragment(phrase), nil
}

// HasSeed сообщает, запомнена ли фраза
func (s *Service) HasSeed(ctx context.Context) (bool, error) {
	_, err := s.seeds.GetSeed(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSeedNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get seed: %w", err)
	}
	return true, nil
}

// ClearSeed забывает фразу. Локальные данные не трогаются;
// удаленная копия остается и будет доступна при повторном вводе фразы.
func (s *Service) ClearSeed(ctx context.Context) error {
	if err := s.seeds.DeleteSeed(ctx); err != nil {
		return fmt.Errorf("failed to clear seed: %w", err)
	}
	return nil
}
