package api

// SyncRow представляет одну строку таблицы habit_sync удаленного хранилища.
// Сервер не заглядывает внутрь payload: это непрозрачный зашифрованный блоб,
// вся логика слияния выполняется на клиенте.
type SyncRow struct {
	ID        string `json:"id"`         // ID идентификатор аккаунта (hex SHA-256 от seed-фразы)
	Payload   string `json:"payload"`    // Payload версионированный шифротекст "v1.<iv>.<ciphertext>"
	UpdatedAt int64  `json:"updated_at"` // UpdatedAt логический timestamp записи (unix миллисекунды)
}

// ErrorResponse представляет ответ сервера с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
