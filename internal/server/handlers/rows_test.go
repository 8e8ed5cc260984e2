package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/consistency/internal/server/storage/sqlite"
	"github.com/iudanet/consistency/pkg/api"
)

func newRowsHandler(t *testing.T) (*RowsHandler, *sqlite.Storage) {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return NewRowsHandler(setupTestLogger(), store), store
}

func TestHandleRows_GetEmpty(t *testing.T) {
	handler, _ := newRowsHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/rest/v1/habit_sync?id=eq.account-1&select=payload,updated_at", nil)
	w := httptest.NewRecorder()
	handler.HandleRows(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var rows []api.SyncRow
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
	assert.Empty(t, rows, "отсутствие строки — пустой массив, не 404")
}

func TestHandleRows_UpsertAndGet(t *testing.T) {
	handler, _ := newRowsHandler(t)

	body := `[{"id":"account-1","payload":"v1.aXY.Y3Q","updated_at":1700000000000}]`
	req := httptest.NewRequest(http.MethodPost, "/rest/v1/habit_sync?on_conflict=id", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleRows(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Body.String(), "return=minimal: тело пустое")

	req = httptest.NewRequest(http.MethodGet, "/rest/v1/habit_sync?id=eq.account-1", nil)
	w = httptest.NewRecorder()
	handler.HandleRows(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var rows []api.SyncRow
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "account-1", rows[0].ID)
	assert.Equal(t, "v1.aXY.Y3Q", rows[0].Payload)
	assert.Equal(t, int64(1700000000000), rows[0].UpdatedAt)
}

func TestHandleRows_UpsertReplaces(t *testing.T) {
	handler, _ := newRowsHandler(t)

	for _, body := range []string{
		`[{"id":"account-1","payload":"v1.old.old","updated_at":1000}]`,
		`[{"id":"account-1","payload":"v1.new.new","updated_at":2000}]`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/rest/v1/habit_sync", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.HandleRows(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/rest/v1/habit_sync?id=eq.account-1", nil)
	w := httptest.NewRecorder()
	handler.HandleRows(w, req)

	var rows []api.SyncRow
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "v1.new.new", rows[0].Payload)
}

func TestHandleRows_BadRequests(t *testing.T) {
	handler, _ := newRowsHandler(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{name: "GET без фильтра id", method: http.MethodGet, target: "/rest/v1/habit_sync", status: http.StatusBadRequest},
		{name: "GET с фильтром не eq", method: http.MethodGet, target: "/rest/v1/habit_sync?id=gt.abc", status: http.StatusBadRequest},
		{name: "POST не-JSON", method: http.MethodPost, target: "/rest/v1/habit_sync", body: "not json", status: http.StatusBadRequest},
		{name: "POST пустой массив", method: http.MethodPost, target: "/rest/v1/habit_sync", body: "[]", status: http.StatusBadRequest},
		{name: "POST без id", method: http.MethodPost, target: "/rest/v1/habit_sync", body: `[{"payload":"v1.a.b","updated_at":1}]`, status: http.StatusBadRequest},
		{name: "POST без payload", method: http.MethodPost, target: "/rest/v1/habit_sync", body: `[{"id":"a","updated_at":1}]`, status: http.StatusBadRequest},
		{name: "DELETE не поддержан", method: http.MethodDelete, target: "/rest/v1/habit_sync?id=eq.a", status: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			}
			w := httptest.NewRecorder()
			handler.HandleRows(w, req)

			assert.Equal(t, tt.status, w.Code)

			var errResp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestParseIDFilter(t *testing.T) {
	id, ok := parseIDFilter("eq.abc123")
	assert.True(t, ok)
	assert.Equal(t, "abc123", id)

	_, ok = parseIDFilter("abc123")
	assert.False(t, ok)

	_, ok = parseIDFilter("eq.")
	assert.False(t, ok)
}
