// Package handlers содержит HTTP handlers сервера синхронизации.
// Сервер намеренно тонкий: одна таблица, чтение по id и upsert.
// Диалект запросов повторяет PostgREST, чтобы клиент без изменений
// работал и с этим сервером, и с managed-бэкендом.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/consistency/internal/server/storage"
	"github.com/iudanet/consistency/pkg/api"
)

// RowStorage определяет интерфейс хранилища строк синхронизации
type RowStorage interface {
	GetRow(ctx context.Context, id string) (*api.SyncRow, error)
	UpsertRow(ctx context.Context, row *api.SyncRow) error
}

// RowsHandler handles sync row requests
type RowsHandler struct {
	logger  *slog.Logger
	storage RowStorage
}

// NewRowsHandler creates a new rows handler
func NewRowsHandler(logger *slog.Logger, storage RowStorage) *RowsHandler {
	return &RowsHandler{
		logger:  logger,
		storage: storage,
	}
}

// HandleRows обрабатывает GET и POST запросы к /rest/v1/habit_sync
func (h *RowsHandler) HandleRows(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPost:
		h.handlePost(w, r)
	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleGet обрабатывает GET ?id=eq.<id>&select=payload,updated_at.
// Ответ всегда массив: пустой, если строки нет.
func (h *RowsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDFilter(r.URL.Query().Get("id"))
	if !ok {
		writeError(w, h.logger, http.StatusBadRequest, "id filter must have form id=eq.<account id>")
		return
	}

	rows := []api.SyncRow{}
	row, err := h.storage.GetRow(r.Context(), id)
	switch {
	case err == nil:
		rows = append(rows, *row)
	case errors.Is(err, storage.ErrRowNotFound):
		// пустой массив
	default:
		h.logger.Error("Failed to get sync row", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		h.logger.Error("Failed to encode rows response", "error", err)
	}

	h.logger.Info("GET rows completed", "id", id, "found", len(rows) > 0)
}

// handlePost обрабатывает upsert. Тело — массив строк (клиент шлет одну),
// ответ 201 без тела (return=minimal).
func (h *RowsHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	var rows []api.SyncRow
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		h.logger.Warn("Failed to decode upsert request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(rows) == 0 {
		writeError(w, h.logger, http.StatusBadRequest, "request body must contain at least one row")
		return
	}

	for _, row := range rows {
		if row.ID == "" || row.Payload == "" {
			writeError(w, h.logger, http.StatusBadRequest, "row id and payload are required")
			return
		}

		if err := h.storage.UpsertRow(r.Context(), &row); err != nil {
			h.logger.Error("Failed to upsert sync row", "error", err, "id", row.ID)
			writeError(w, h.logger, http.StatusInternalServerError, "internal server error")
			return
		}

		h.logger.Info("Row upserted", "id", row.ID, "updated_at", row.UpdatedAt)
	}

	w.WriteHeader(http.StatusCreated)
}

// parseIDFilter разбирает PostgREST-фильтр "eq.<id>"
func parseIDFilter(filter string) (string, bool) {
	id, ok := strings.CutPrefix(filter, "eq.")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// writeError пишет ошибку в JSON формате, который разбирает клиент
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := api.ErrorResponse{Error: message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}
