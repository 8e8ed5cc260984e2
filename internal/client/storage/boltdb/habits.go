package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/consistency/internal/client/storage"
	"github.com/iudanet/consistency/internal/dateutil"
	"github.com/iudanet/consistency/internal/models"
)

const keyHabitCollection = "collection"

// habitRecord промежуточная форма для валидирующей десериализации.
// Каждое поле имеет ровно один определенный дефолт (см. reconstruct),
// поэтому частично поврежденные записи восстанавливаются предсказуемо.
type habitRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CreatedAt   string   `json:"createdAt"`
	Completions []string `json:"completions"`
	Order       *float64 `json:"order"`
}

// LoadHabits загружает коллекцию привычек из BoltDB.
// Ошибки разбора не распространяются: нечитаемый или неожиданный payload
// дает пустую коллекцию, отдельные поврежденные записи — дефолты по полям.
func (s *Storage) LoadHabits(ctx context.Context) (models.Collection, error) {
	var raw []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHabits)
		if bucket == nil {
			return fmt.Errorf("habits bucket not found")
		}
		if v := bucket.Get([]byte(keyHabitCollection)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	return decodeCollection(raw), nil
}

// decodeCollection разбирает сохраненные байты с восстановлением дефолтов.
// Не-массив или невалидный JSON деградируют до пустой коллекции.
func decodeCollection(raw []byte) models.Collection {
	if len(raw) == 0 {
		return models.Collection{}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return models.Collection{}
	}

	habits := make(models.Collection, 0, len(elements))
	for i, element := range elements {
		var record habitRecord
		if err := json.Unmarshal(element, &record); err != nil {
			// Элемент вообще не объект привычки — пропускаем
			continue
		}
		habits = append(habits, reconstruct(record, i))
	}

	sort.SliceStable(habits, func(i, j int) bool {
		return habits[i].Order < habits[j].Order
	})

	return habits
}

// reconstruct восстанавливает привычку из записи, подставляя дефолты:
// отсутствующий id генерируется, пустое имя заменяется заглушкой,
// отсутствующие отметки становятся пустым списком (невалидные ключи
// отбрасываются, дубликаты схлопываются), отсутствующий order — индекс элемента.
func reconstruct(record habitRecord, index int) *models.Habit {
	h := &models.Habit{
		ID:   record.ID,
		Name: record.Name,
	}

	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.Name == "" {
		h.Name = models.DefaultHabitName
	}

	h.CreatedAt = time.Now()
	if record.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, record.CreatedAt); err == nil {
			h.CreatedAt = parsed
		}
	}

	seen := make(map[string]struct{}, len(record.Completions))
	completions := make([]string, 0, len(record.Completions))
	for _, key := range record.Completions {
		if _, ok := dateutil.ParseDateKey(key); !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		completions = append(completions, key)
	}
	sort.Strings(completions)
	h.Completions = completions

	h.Order = index
	if record.Order != nil {
		h.Order = int(*record.Order)
	}

	return h
}

// SaveHabits атомарно записывает коллекцию целиком вместе с логическим
// timestamp. Если opts.UpdatedAt равен 0, проставляется текущее время.
// Подписчики уведомляются после успешного коммита, кроме Silent-записей:
// так применение удаленного состояния не запускает обратную синхронизацию.
func (s *Storage) SaveHabits(ctx context.Context, habits models.Collection, opts storage.SaveOptions) error {
	if habits == nil {
		habits = models.Collection{}
	}

	raw, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("failed to marshal habits: %w", err)
	}

	updatedAt := opts.UpdatedAt
	if updatedAt == 0 {
		updatedAt = time.Now().UnixMilli()
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHabits)
		if bucket == nil {
			return fmt.Errorf("habits bucket not found")
		}
		if err := bucket.Put([]byte(keyHabitCollection), raw); err != nil {
			return fmt.Errorf("failed to save habits: %w", err)
		}
		return putLocalUpdatedAt(tx, updatedAt)
	})
	if err != nil {
		return fmt.Errorf("failed to save habits: %w", err)
	}

	if !opts.Silent {
		s.notify(updatedAt)
	}

	return nil
}
