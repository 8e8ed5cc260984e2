// Package api реализует HTTP клиент удаленного хранилища синхронизации.
// Хранилище — одна логическая таблица habit_sync, сервер которой не выполняет
// никакого слияния: чтение по точному id и upsert по id.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/consistency/pkg/api"
)

// syncTable имя логической таблицы в удаленном хранилище
const syncTable = "habit_sync"

// Client представляет HTTP клиент для взаимодействия с удаленным хранилищем.
// apiKey — статический транспортный credential, один на всех пользователей:
// авторизация данных обеспечивается знанием seed-фразы, а не этим ключом.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient создает новый клиент удаленного хранилища.
// Пустые baseURL или apiKey означают, что синхронизация не настроена
// (см. IsConfigured) — клиент создается, но запросы не выполняются.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsConfigured сообщает, задан ли endpoint и транспортный ключ
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// BaseURL возвращает настроенный адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchRow читает строку таблицы по идентификатору аккаунта.
// Возвращает (nil, nil), если строки нет — отсутствие данных не ошибка.
func (c *Client) FetchRow(ctx context.Context, id string) (*api.SyncRow, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)
	query.Set("select", "payload,updated_at")

	var rows []api.SyncRow
	if err := c.doRequest(ctx, http.MethodGet, "/rest/v1/"+syncTable+"?"+query.Encode(), nil, nil, &rows); err != nil {
		return nil, fmt.Errorf("fetch request failed: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	row.ID = id
	return &row, nil
}

// UpsertRow вставляет или заменяет строку таблицы по id.
// Тело запроса — массив из одной строки; сервер применяет
// resolution=merge-duplicates, то есть полная замена без слияния.
func (c *Client) UpsertRow(ctx context.Context, row api.SyncRow) error {
	headers := map[string]string{
		"Prefer": "resolution=merge-duplicates,return=minimal",
	}

	err := c.doRequest(ctx, http.MethodPost, "/rest/v1/"+syncTable+"?on_conflict=id", []api.SyncRow{row}, headers, nil)
	if err != nil {
		return fmt.Errorf("upsert request failed: %w", err)
	}

	return nil
}

// doRequest выполняет HTTP запрос с транспортными заголовками авторизации
func (c *Client) doRequest(ctx context.Context, method, path string, body any, headers map[string]string, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
