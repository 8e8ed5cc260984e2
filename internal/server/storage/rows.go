// Package storage определяет интерфейс серверного хранилища синхронизации.
// Сервер хранит по одной строке на аккаунт и ничего не знает о содержимом:
// payload непрозрачен, слияние выполняют клиенты.
package storage

import (
	"context"

	"github.com/iudanet/consistency/pkg/api"
)

//go:generate moq -out rows_mock.go . RowStorage

// RowStorage defines interface for sync row persistence
type RowStorage interface {
	// GetRow читает строку аккаунта.
	// Возвращает ErrRowNotFound, если строки нет.
	GetRow(ctx context.Context, id string) (*api.SyncRow, error)

	// UpsertRow вставляет или полностью заменяет строку аккаунта
	UpsertRow(ctx context.Context, row *api.SyncRow) error
}
