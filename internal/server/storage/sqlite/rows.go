package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/consistency/internal/server/storage"
	"github.com/iudanet/consistency/pkg/api"
)

// GetRow читает строку аккаунта.
// Возвращает ErrRowNotFound, если строки нет.
func (s *Storage) GetRow(ctx context.Context, id string) (*api.SyncRow, error) {
	query := `SELECT id, payload, updated_at FROM habit_sync WHERE id = ?`

	row := &api.SyncRow{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(&row.ID, &row.Payload, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRowNotFound
		}
		return nil, fmt.Errorf("failed to get sync row: %w", err)
	}

	return row, nil
}

// UpsertRow вставляет или полностью заменяет строку аккаунта.
// Сервер не сравнивает timestamps: кто пришел последним, тот и записал.
// Порядок обеспечивают клиенты, сравнивая updated_at перед push.
func (s *Storage) UpsertRow(ctx context.Context, row *api.SyncRow) error {
	query := `
		INSERT INTO habit_sync (id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, row.ID, row.Payload, row.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert sync row: %w", err)
	}

	return nil
}
