package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/consistency/internal/models"
)

const keyLocalUpdatedAt = "local_updated_at"

// putLocalUpdatedAt записывает метку внутри существующей транзакции
func putLocalUpdatedAt(tx *bbolt.Tx, updatedAt int64) error {
	bucket := tx.Bucket(bucketMetadata)
	if bucket == nil {
		return fmt.Errorf("metadata bucket not found")
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(updatedAt))

	if err := bucket.Put([]byte(keyLocalUpdatedAt), buf); err != nil {
		return fmt.Errorf("failed to save local updated_at: %w", err)
	}

	return nil
}

// GetLocalUpdatedAt возвращает логический timestamp последней локальной записи.
// 0, если метка еще не проставлялась.
func (s *Storage) GetLocalUpdatedAt(ctx context.Context) (int64, error) {
	var updatedAt int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get([]byte(keyLocalUpdatedAt))
		if buf == nil {
			updatedAt = 0
			return nil
		}

		updatedAt = int64(binary.BigEndian.Uint64(buf))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get local updated_at: %w", err)
	}

	return updatedAt, nil
}

// SetLocalUpdatedAt записывает логический timestamp независимо от коллекции
func (s *Storage) SetLocalUpdatedAt(ctx context.Context, updatedAt int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return putLocalUpdatedAt(tx, updatedAt)
	})
}

// EnsureLocalUpdatedAt гарантирует наличие базовой метки времени.
// Если метки нет, а коллекция непуста (данные существовали до появления
// синхронизации), однократно проставляет "сейчас" — иначе первый sync
// счел бы старые локальные данные не имеющими метки и всегда проигрывающими
// удаленным. Возвращает действующую метку (0, если коллекция пуста).
func (s *Storage) EnsureLocalUpdatedAt(ctx context.Context, habits models.Collection) (int64, error) {
	current, err := s.GetLocalUpdatedAt(ctx)
	if err != nil {
		return 0, err
	}
	if current != 0 {
		return current, nil
	}

	if len(habits) == 0 {
		return 0, nil
	}

	now := time.Now().UnixMilli()
	if err := s.SetLocalUpdatedAt(ctx, now); err != nil {
		return 0, err
	}

	return now, nil
}
