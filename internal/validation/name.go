package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxHabitNameLen максимальная длина имени привычки (в рунах, после trim)
const MaxHabitNameLen = 100

// NormalizeHabitName приводит имя привычки к каноническому виду:
// обрезает пробелы по краям. Внутренние пробелы сохраняются как есть.
func NormalizeHabitName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateHabitName проверяет, что имя привычки корректно:
// непустое после trim и не длиннее MaxHabitNameLen символов.
// Проверяется нормализованное имя, поэтому "  " так же невалидно, как "".
func ValidateHabitName(name string) error {
	normalized := NormalizeHabitName(name)

	if normalized == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	if utf8.RuneCountInString(normalized) > MaxHabitNameLen {
		return fmt.Errorf("habit name must not exceed %d characters", MaxHabitNameLen)
	}

	return nil
}
