// Package crypto реализует шифрование синхронизируемого payload:
// деривацию ключа из seed-фразы и версионированный формат
// "v1.<base64 iv>.<base64 ciphertext>" поверх AES-256-GCM.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// NonceSize размер IV для AES-GCM (стандартные 96 бит)
	NonceSize = 12
	// payloadVersion тег версии формата payload
	payloadVersion = "v1"
)

// EncryptPayload шифрует plaintext ключом key и упаковывает результат
// в строку формата "v1.<base64 iv>.<base64 ciphertext>".
// IV генерируется заново на каждое шифрование.
func EncryptPayload(key, plaintext []byte) (string, error) {
	if len(key) != KeySize {
		return "", fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	iv := make([]byte, NonceSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	// GCM дописывает authentication tag в конец ciphertext
	ciphertext := aesGCM.Seal(nil, iv, plaintext, nil)

	return payloadVersion + "." +
		base64.StdEncoding.EncodeToString(iv) + "." +
		base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptPayload расшифровывает payload формата EncryptPayload.
// Возвращает ok=false на любую проблему: незнакомый тег версии, отсутствующие
// сегменты, битый base64, неверный ключ или поврежденный ciphertext
// (GCM аутентифицирован, подмена обнаруживается). Никогда не паникует:
// для протокола синхронизации "не расшифровалось" — это состояние
// (несовпадение seed), а не ошибка.
func DecryptPayload(key []byte, payload string) ([]byte, bool) {
	if len(key) != KeySize {
		return nil, false
	}

	parts := strings.Split(payload, ".")
	if len(parts) != 3 || parts[0] != payloadVersion || parts[1] == "" || parts[2] == "" {
		return nil, false
	}

	iv, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(iv) != NonceSize {
		return nil, false
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, false
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, false
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, false
	}

	plaintext, err := aesGCM.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, false
	}

	return plaintext, true
}
