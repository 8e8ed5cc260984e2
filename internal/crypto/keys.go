package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Параметры деривации ключа из seed-фразы.
// Соль фиксированная и application-specific: identity пользователя полностью
// определяется самой фразой, поэтому per-user соли здесь нет по построению.
// Менять эти константы нельзя — иначе существующие payload перестанут расшифровываться.
const (
	// kdfSalt фиксированная соль PBKDF2
	kdfSalt = "consistency-sync"
	// kdfIterations количество итераций PBKDF2
	kdfIterations = 100000
	// KeySize длина выходного ключа AES-256 в байтах
	KeySize = 32
)

// DeriveKey выводит симметричный ключ шифрования из нормализованной seed-фразы
// через PBKDF2-SHA256. Детерминирован: одна фраза всегда дает один ключ,
// на любом устройстве.
func DeriveKey(normalizedSeed string) []byte {
	return pbkdf2.Key([]byte(normalizedSeed), []byte(kdfSalt), kdfIterations, KeySize, sha256.New)
}
