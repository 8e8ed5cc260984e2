// Package seed реализует seed-фразу — пользовательский секрет, из которого
// детерминированно выводятся и идентификатор аккаунта в удаленном хранилище,
// и ключ шифрования payload. Аналог пароля без отдельного логина:
// потеря фразы делает удаленные данные невосстановимыми.
package seed

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultWords количество пар слов в фразе по умолчанию
	DefaultWords = 12
	// MinWords нижняя граница количества пар слов
	MinWords = 6
	// MaxWords верхняя граница количества пар слов
	MaxWords = 24
)

// Словари для генерации фразы: по 16 слов, чтобы одна пара
// adjective-noun кодировала ровно один случайный байт.
var adjectives = [16]string{
	"amber", "brisk", "calm", "coral",
	"crisp", "dusk", "ember", "frosty",
	"golden", "ivory", "lucid", "misty",
	"north", "quiet", "royal", "vivid",
}

var nouns = [16]string{
	"anchor", "atlas", "canyon", "delta",
	"falcon", "forest", "galaxy", "harbor",
	"island", "jungle", "meadow", "ocean",
	"prism", "ridge", "summit", "timber",
}

// Normalize приводит фразу к каноническому виду перед любым криптографическим
// использованием: обрезает края, схлопывает внутренние пробелы, переводит
// в нижний регистр. Благодаря этому различия в наборе не меняют identity.
func Normalize(phrase string) string {
	return strings.ToLower(strings.Join(strings.Fields(phrase), " "))
}

// Generate создает новую seed-фразу из words пар слов.
// Каждая пара кодирует один криптографически случайный байт:
// старший ниббл выбирает прилагательное, младший — существительное.
// words ограничивается диапазоном [MinWords, MaxWords].
func Generate(words int) (string, error) {
	if words < MinWords {
		words = MinWords
	}
	if words > MaxWords {
		words = MaxWords
	}

	buf := make([]byte, words)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	pairs := make([]string, 0, words)
	for _, b := range buf {
		pairs = append(pairs, adjectives[b>>4]+"-"+nouns[b&15])
	}

	return strings.Join(pairs, " "), nil
}

// AccountID выводит идентификатор аккаунта из фразы: hex(SHA-256(нормализованная
// фраза)). Используется как непрозрачный ключ строки в удаленном хранилище.
// Пустая (после нормализации) фраза дает пустой идентификатор.
func AccountID(phrase string) string {
	normalized := Normalize(phrase)
	if normalized == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Fragment возвращает короткий код аккаунта для визуальной сверки двух устройств
// без раскрытия самой фразы: первые 12 hex-символов идентификатора по модулю
// миллиона, в виде "123•456". Пустая фраза дает пустую строку.
func Fragment(phrase string) string {
	id := AccountID(phrase)
	if id == "" {
		return ""
	}

	head, err := strconv.ParseUint(id[:12], 16, 64)
	if err != nil {
		return ""
	}

	padded := fmt.Sprintf("%06d", head%1000000)
	return padded[:3] + "•" + padded[3:]
}
