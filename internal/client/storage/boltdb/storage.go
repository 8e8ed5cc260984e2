// Package boltdb реализует локальное хранилище клиента поверх BoltDB:
// коллекция привычек, логический timestamp и запомненная seed-фраза.
package boltdb

import (
	"context"
	"fmt"
	"sync"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketHabits   = []byte("habits")
	bucketMetadata = []byte("metadata")
	bucketSeed     = []byte("seed")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB

	// Подписчики уведомлений об изменениях (несайлентные записи)
	subscribersMu sync.Mutex
	subscribers   []func(updatedAt int64)
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketHabits, bucketMetadata, bucketSeed} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// Subscribe регистрирует наблюдателя несайлентных записей коллекции.
// Наблюдатели вызываются синхронно после успешного коммита.
func (s *Storage) Subscribe(fn func(updatedAt int64)) {
	s.subscribersMu.Lock()
	defer s.subscribersMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// notify уведомляет всех подписчиков о новой метке
func (s *Storage) notify(updatedAt int64) {
	s.subscribersMu.Lock()
	subscribers := make([]func(int64), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.subscribersMu.Unlock()

	for _, fn := range subscribers {
		fn(updatedAt)
	}
}
