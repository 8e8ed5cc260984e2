// Package habit содержит доменные алгоритмы над привычками:
// операции над множеством отметок, подсчет серий и статистики выполнения.
// Все функции чистые; "сегодня" всегда передается явным параметром,
// чтобы доменная логика не зависела от глобального состояния и легко тестировалась.
package habit

import (
	"math"
	"sort"
	"time"

	"github.com/iudanet/consistency/internal/dateutil"
	"github.com/iudanet/consistency/internal/models"
)

// completionSet строит множество отметок привычки
func completionSet(h *models.Habit) map[string]struct{} {
	set := make(map[string]struct{}, len(h.Completions))
	for _, key := range h.Completions {
		set[key] = struct{}{}
	}
	return set
}

// IsCompletedOn проверяет, отмечена ли привычка в указанный день
func IsCompletedOn(h *models.Habit, key string) bool {
	_, ok := completionSet(h)[key]
	return ok
}

// SetCompletion добавляет или снимает отметку за день.
// Операция идемпотентна: повторный вызов с теми же (key, done) ничего не меняет.
// После изменения список отметок пересобирается отсортированным и без дубликатов.
func SetCompletion(h *models.Habit, key string, done bool) {
	set := completionSet(h)
	if done {
		set[key] = struct{}{}
	} else {
		delete(set, key)
	}

	completions := make([]string, 0, len(set))
	for k := range set {
		completions = append(completions, k)
	}
	sort.Strings(completions)
	h.Completions = completions
}

// CalcStreak считает текущую серию: количество подряд отмеченных календарных
// дней, идя назад от today. Если сегодня еще не отмечено, отсчет начинается
// со вчерашнего дня — серия не рвется из-за того, что день еще не закрыт,
// но и не учитывает сегодня, пока отметки нет. Серия обрывается на первом
// пропуске; привычка без отметок дает 0.
func CalcStreak(h *models.Habit, today time.Time) int {
	set := completionSet(h)
	if len(set) == 0 {
		return 0
	}

	cursor := dateutil.StartOfDay(today)
	if _, hasToday := set[dateutil.DateKey(cursor)]; !hasToday {
		cursor = dateutil.AddDays(cursor, -1)
	}

	count := 0
	for {
		if _, ok := set[dateutil.DateKey(cursor)]; !ok {
			break
		}
		count++
		cursor = dateutil.AddDays(cursor, -1)
	}

	return count
}

// StartDate возвращает дату начала привычки: более раннюю из даты создания
// (усеченной до дня) и самой ранней отметки. Так импорт исторических отметок,
// сделанных до формального создания записи, дает корректный знаменатель статистики.
// ok=false, если дату начала определить нельзя.
func StartDate(h *models.Habit) (time.Time, bool) {
	var created time.Time
	hasCreated := !h.CreatedAt.IsZero()
	if hasCreated {
		created = dateutil.StartOfDay(h.CreatedAt)
	}

	var first time.Time
	hasFirst := false
	for _, key := range h.Completions {
		date, ok := dateutil.ParseDateKey(key)
		if !ok {
			continue
		}
		if !hasFirst || date.Before(first) {
			first = date
			hasFirst = true
		}
	}

	switch {
	case hasCreated && hasFirst:
		if created.Before(first) || created.Equal(first) {
			return created, true
		}
		return first, true
	case hasCreated:
		return created, true
	case hasFirst:
		return first, true
	default:
		return time.Time{}, false
	}
}

// ActiveDays возвращает число дней от даты начала до today включительно.
// 0, если даты начала нет или она в будущем (защита от сбитых часов).
func ActiveDays(h *models.Habit, today time.Time) int {
	start, ok := StartDate(h)
	if !ok {
		return 0
	}

	day := dateutil.StartOfDay(today)
	if day.Before(start) {
		return 0
	}

	// Округление поглощает сдвиг на час при переходе на летнее/зимнее время
	diff := int(math.Round(day.Sub(start).Hours() / 24))
	return diff + 1
}

// Stats агрегированная статистика выполнения привычки
type Stats struct {
	TotalCompletions  int // отметки не позднее сегодняшнего дня
	TotalDays         int // активные дни (см. ActiveDays)
	CompletionPercent int // округленный процент выполнения, 0 при TotalDays == 0
}

// CompletionStats считает статистику выполнения на дату today.
// Отметки с датой в будущем (сбитые часы, предзаполненные данные)
// в числитель не входят. Знаменатель — активные дни без дополнительных
// поправок: если отметки начинаются раньше даты создания, StartDate
// уже сдвигает начало отсчета назад.
func CompletionStats(h *models.Habit, today time.Time) Stats {
	day := dateutil.StartOfDay(today)

	counted := make(map[string]struct{})
	for _, key := range h.Completions {
		date, ok := dateutil.ParseDateKey(key)
		if !ok {
			continue
		}
		if date.After(day) {
			continue
		}
		counted[key] = struct{}{}
	}

	stats := Stats{
		TotalCompletions: len(counted),
		TotalDays:        ActiveDays(h, today),
	}

	if stats.TotalDays > 0 {
		stats.CompletionPercent = int(math.Round(100 * float64(stats.TotalCompletions) / float64(stats.TotalDays)))
	}

	return stats
}

// Renumber восстанавливает инвариант порядка: сортирует коллекцию по Order
// и перенумеровывает ее в 0..n-1 без пропусков, сохраняя относительный порядок.
// Вызывается после удаления привычки.
func Renumber(c models.Collection) {
	sort.SliceStable(c, func(i, j int) bool {
		return c[i].Order < c[j].Order
	})
	for i, h := range c {
		h.Order = i
	}
}
