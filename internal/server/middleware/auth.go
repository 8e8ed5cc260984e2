// Package middleware содержит HTTP middleware сервера синхронизации
package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// APIKeyMiddleware создает middleware проверки статического API ключа.
// Ключ — транспортный credential, один на инсталляцию: он отсекает
// случайный трафик, но не разграничивает пользователей. Данные защищает
// шифрование payload на клиенте, а не этот ключ.
//
// Ключ принимается в заголовке "apikey" или "Authorization: Bearer <key>" —
// клиент шлет оба.
func APIKeyMiddleware(logger *slog.Logger, apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := extractAPIKey(r)
			if presented == "" {
				logger.Warn("Missing API key", "path", r.URL.Path)
				http.Error(w, "Unauthorized: missing API key", http.StatusUnauthorized)
				return
			}

			// Сравнение за постоянное время, чтобы не течь длиной совпавшего префикса
			if subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
				logger.Warn("Invalid API key", "path", r.URL.Path)
				http.Error(w, "Unauthorized: invalid API key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractAPIKey достает ключ из заголовков запроса
func extractAPIKey(r *http.Request) string {
	if key := r.Header.Get("apikey"); key != "" {
		return key
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
