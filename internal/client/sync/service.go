// Package sync реализует протокол синхронизации: один проход last-writer-wins
// между локальной коллекцией и зашифрованной удаленной копией.
//
// Слияние выполняется на гранулярности коллекции целиком: побеждает сторона
// с большим логическим timestamp, правки проигравшей стороны отбрасываются
// полностью. Это осознанный компромисс протокола, а не упущение.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	gosync "sync"
	"time"

	"github.com/iudanet/consistency/internal/client/storage"
	"github.com/iudanet/consistency/internal/crypto"
	"github.com/iudanet/consistency/internal/models"
	"github.com/iudanet/consistency/internal/seed"
	"github.com/iudanet/consistency/pkg/api"
)

// ErrSyncInProgress возвращается, когда SyncOnce вызван во время
// незавершенного прохода: проход не реентерабелен, конкурентные запуски
// гонялись бы на локальном timestamp.
var ErrSyncInProgress = errors.New("sync already in progress")

// Status итог одного прохода синхронизации
type Status string

const (
	// StatusNotConfigured удаленный endpoint не настроен; прохода не было
	StatusNotConfigured Status = "not-configured"
	// StatusNoSeed seed-фраза не задана; прохода не было
	StatusNoSeed Status = "no-seed"
	// StatusPushed локальное состояние отправлено в удаленное хранилище
	StatusPushed Status = "pushed"
	// StatusPulled удаленное состояние применено локально
	StatusPulled Status = "pulled"
	// StatusUpToDate метки совпали, записей не было
	StatusUpToDate Status = "up-to-date"
	// StatusSeedMismatch удаленный payload не расшифровался текущей фразой.
	// Никаких записей не выполняется: перезапись по неверной догадке разрушительна.
	StatusSeedMismatch Status = "seed-mismatch"
)

// Result результат одного прохода синхронизации
type Result struct {
	Status        Status
	UpdatedAt     int64 // действующий после прохода логический timestamp (0, если прохода не было)
	AppliedRemote bool  // локальная коллекция заменена удаленной
}

//go:generate moq -out remote_mock.go . Remote

// Remote определяет интерфейс удаленного хранилища, который нужен движку
type Remote interface {
	// IsConfigured сообщает, задан ли endpoint и транспортный ключ
	IsConfigured() bool

	// FetchRow читает строку по идентификатору аккаунта; (nil, nil) если строки нет
	FetchRow(ctx context.Context, id string) (*api.SyncRow, error)

	// UpsertRow вставляет или заменяет строку по id
	UpsertRow(ctx context.Context, row api.SyncRow) error
}

// Service выполняет проходы синхронизации
type Service struct {
	remote Remote
	store  storage.HabitStorage
	meta   storage.MetadataStorage
	seeds  storage.SeedStorage
	logger *slog.Logger

	mu gosync.Mutex // single-flight: не более одного прохода одновременно
}

// NewService creates a new sync service
func NewService(remote Remote, store storage.HabitStorage, meta storage.MetadataStorage, seeds storage.SeedStorage, logger *slog.Logger) *Service {
	return &Service{
		remote: remote,
		store:  store,
		meta:   meta,
		seeds:  seeds,
		logger: logger,
	}
}

// SyncOnce выполняет один проход синхронизации.
//
// Машина состояний:
//  1. Нет endpoint или фразы — соответствующий статус без побочных эффектов.
//  2. Удаленной строки нет — локальное состояние шифруется и отправляется (pushed).
//  3. Строка есть, но не расшифровывается — seed-mismatch, никаких записей.
//  4. Удаленная метка больше локальной — удаленная коллекция применяется локально
//     silent-записью (pulled), локальная метка становится удаленной.
//  5. Удаленная метка меньше — локальное состояние отправляется (pushed).
//  6. Метки равны — up-to-date, записей нет.
//
// Транспортные сбои возвращаются ошибкой, а не статусом: политика повторов —
// забота вызывающего. Локальная коллекция при любом сбое остается нетронутой.
func (s *Service) SyncOnce(ctx context.Context) (*Result, error) {
	if !s.mu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.mu.Unlock()

	if !s.remote.IsConfigured() {
		return &Result{Status: StatusNotConfigured}, nil
	}

	phrase, err := s.seeds.GetSeed(ctx)
	if err != nil && !errors.Is(err, storage.ErrSeedNotFound) {
		return nil, fmt.Errorf("failed to get seed: %w", err)
	}
	normalized := seed.Normalize(phrase)
	if normalized == "" {
		return &Result{Status: StatusNoSeed}, nil
	}

	habits, err := s.store.LoadHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	localUpdatedAt, err := s.meta.EnsureLocalUpdatedAt(ctx, habits)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure local updated_at: %w", err)
	}

	accountID := seed.AccountID(normalized)
	key := crypto.DeriveKey(normalized)

	row, err := s.remote.FetchRow(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote state: %w", err)
	}

	// Удаленной копии еще нет: первый sync с этого устройства создает ее
	if row == nil || row.Payload == "" {
		updatedAt := localUpdatedAt
		if updatedAt == 0 {
			updatedAt = time.Now().UnixMilli()
		}
		if err := s.push(ctx, key, accountID, habits, updatedAt); err != nil {
			return nil, err
		}
		s.logger.Info("Sync pushed initial state", "updated_at", updatedAt, "habits", len(habits))
		return &Result{Status: StatusPushed, UpdatedAt: updatedAt}, nil
	}

	remoteHabits, ok := decryptEnvelope(key, row.Payload)
	if !ok {
		s.logger.Warn("Remote payload does not decrypt under current seed")
		return &Result{Status: StatusSeedMismatch}, nil
	}

	switch {
	case row.UpdatedAt > localUpdatedAt:
		// Удаленная сторона новее: применяем silent-записью, чтобы
		// не запустить обратную синхронизацию по уведомлению
		opts := storage.SaveOptions{UpdatedAt: row.UpdatedAt, Silent: true}
		if err := s.store.SaveHabits(ctx, remoteHabits, opts); err != nil {
			return nil, fmt.Errorf("failed to apply remote state: %w", err)
		}
		s.logger.Info("Sync pulled remote state",
			"remote_updated_at", row.UpdatedAt,
			"local_updated_at", localUpdatedAt,
			"habits", len(remoteHabits))
		return &Result{Status: StatusPulled, UpdatedAt: row.UpdatedAt, AppliedRemote: true}, nil

	case row.UpdatedAt < localUpdatedAt:
		if err := s.push(ctx, key, accountID, habits, localUpdatedAt); err != nil {
			return nil, err
		}
		s.logger.Info("Sync pushed local state",
			"local_updated_at", localUpdatedAt,
			"remote_updated_at", row.UpdatedAt)
		return &Result{Status: StatusPushed, UpdatedAt: localUpdatedAt}, nil

	default:
		return &Result{Status: StatusUpToDate, UpdatedAt: localUpdatedAt}, nil
	}
}

// push шифрует коллекцию и отправляет ее в удаленное хранилище
func (s *Service) push(ctx context.Context, key []byte, accountID string, habits models.Collection, updatedAt int64) error {
	plaintext, err := json.Marshal(models.SyncEnvelope{Habits: habits})
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	payload, err := crypto.EncryptPayload(key, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt payload: %w", err)
	}

	row := api.SyncRow{
		ID:        accountID,
		Payload:   payload,
		UpdatedAt: updatedAt,
	}
	if err := s.remote.UpsertRow(ctx, row); err != nil {
		return fmt.Errorf("failed to upsert remote state: %w", err)
	}

	return nil
}

// decryptEnvelope расшифровывает и разбирает удаленный payload.
// Любой сбой (неверная фраза, повреждение, не-JSON после расшифровки)
// означает несовпадение seed.
func decryptEnvelope(key []byte, payload string) (models.Collection, bool) {
	plaintext, ok := crypto.DecryptPayload(key, payload)
	if !ok {
		return nil, false
	}

	var envelope models.SyncEnvelope
	if err := json.Unmarshal(plaintext, &envelope); err != nil {
		return nil, false
	}

	if envelope.Habits == nil {
		return models.Collection{}, true
	}
	return envelope.Habits, true
}
