package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/consistency/internal/client/storage"
)

const keySeedPhrase = "seed_phrase"

// SaveSeed сохраняет seed-фразу в локальном хранилище.
// Фраза хранится открытым текстом: это локальный секрет пользователя,
// из которого выводятся ключи, шифровать его нечем по построению.
func (s *Storage) SaveSeed(ctx context.Context, phrase string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSeed)
		if bucket == nil {
			return fmt.Errorf("seed bucket not found")
		}
		if err := bucket.Put([]byte(keySeedPhrase), []byte(phrase)); err != nil {
			return fmt.Errorf("failed to save seed: %w", err)
		}
		return nil
	})
}

// GetSeed возвращает сохраненную seed-фразу.
// Возвращает storage.ErrSeedNotFound, если фраза не сохранена.
func (s *Storage) GetSeed(ctx context.Context) (string, error) {
	var phrase string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSeed)
		if bucket == nil {
			return fmt.Errorf("seed bucket not found")
		}

		v := bucket.Get([]byte(keySeedPhrase))
		if v == nil {
			return storage.ErrSeedNotFound
		}

		phrase = string(v)
		return nil
	})
	if err != nil {
		return "", err
	}

	return phrase, nil
}

// DeleteSeed забывает сохраненную seed-фразу
func (s *Storage) DeleteSeed(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSeed)
		if bucket == nil {
			return fmt.Errorf("seed bucket not found")
		}
		if err := bucket.Delete([]byte(keySeedPhrase)); err != nil {
			return fmt.Errorf("failed to delete seed: %w", err)
		}
		return nil
	})
}
