// Package dateutil содержит чистую календарную арифметику для ключей дней.
// Ключ дня имеет формат YYYY-MM-DD и идентифицирует локальный календарный день
// независимо от времени суток и таймзоны.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKey форматирует дату как ключ дня YYYY-MM-DD.
// Используются собственные (локальные) год/месяц/день даты — без UTC-нормализации,
// поэтому один и тот же момент времени в разных таймзонах дает разные ключи.
func DateKey(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// ParseDateKey разбирает ключ дня обратно в дату (полночь локального времени).
// Возвращает ok=false на некорректный вход: неверное число сегментов,
// нечисловые сегменты, нулевой год/месяц/день. Никогда не паникует.
// Переполнение месяца/дня нормализуется календарем (как time.Date).
func ParseDateKey(key string) (time.Time, bool) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return time.Time{}, false
		}
		nums[i] = n
	}

	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.Local), true
}

// StartOfDay обнуляет время до полуночи, сохраняя локацию даты
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// StartOfWeek возвращает полночь ближайшего прошедшего дня недели weekStartsOn.
// Если t уже приходится на weekStartsOn, возвращается полночь самого t.
func StartOfWeek(t time.Time, weekStartsOn time.Weekday) time.Time {
	day := StartOfDay(t)
	diff := (int(day.Weekday()) - int(weekStartsOn) + 7) % 7
	return AddDays(day, -diff)
}

// AddDays сдвигает дату на n календарных дней (n может быть отрицательным)
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
