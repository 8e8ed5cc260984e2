package models

import "time"

// DefaultHabitName имя-заглушка для привычек без названия.
// Подставляется при восстановлении повреждённых записей из локального хранилища.
const DefaultHabitName = "Без названия"

// Habit представляет одну привычку пользователя.
// Completions хранится как отсортированный список календарных ключей
// вида YYYY-MM-DD (локальный календарь, без таймзоны).
// JSON-имена полей совпадают с форматом синхронизируемого payload.
type Habit struct {
	CreatedAt   time.Time `json:"createdAt"`   // CreatedAt время создания, неизменяемое
	ID          string    `json:"id"`          // ID уникальный идентификатор (UUID), неизменяемый
	Name        string    `json:"name"`        // Name отображаемое имя (непустое, до 100 символов)
	Completions []string  `json:"completions"` // Completions отсортированные уникальные ключи дней
	Order       int       `json:"order"`       // Order позиция в списке (0..n-1, без пропусков)
}

// Clone создает глубокую копию привычки
func (h *Habit) Clone() *Habit {
	completions := make([]string, len(h.Completions))
	copy(completions, h.Completions)

	return &Habit{
		ID:          h.ID,
		Name:        h.Name,
		CreatedAt:   h.CreatedAt,
		Completions: completions,
		Order:       h.Order,
	}
}

// Collection представляет полный список привычек, упорядоченный по Order.
// Локальное хранилище и протокол синхронизации оперируют коллекцией целиком:
// частичных записей не бывает.
type Collection []*Habit

// Clone создает глубокую копию коллекции
func (c Collection) Clone() Collection {
	result := make(Collection, 0, len(c))
	for _, h := range c {
		result = append(result, h.Clone())
	}
	return result
}

// SyncEnvelope представляет расшифрованное содержимое удаленного payload.
// Логический timestamp хранится отдельно (в колонке updated_at на сервере
// и в metadata bucket на клиенте), поэтому в конверт не входит.
type SyncEnvelope struct {
	Habits Collection `json:"habits"`
}
