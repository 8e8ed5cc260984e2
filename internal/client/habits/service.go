// Package habits реализует клиентский сервис CRUD операций над привычками
// поверх локального хранилища. Все мутации проходят через атомарную запись
// коллекции целиком; сбои синхронизации на эти операции не влияют.
package habits

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/consistency/internal/client/storage"
	"github.com/iudanet/consistency/internal/dateutil"
	"github.com/iudanet/consistency/internal/habit"
	"github.com/iudanet/consistency/internal/models"
	"github.com/iudanet/consistency/internal/validation"
)

// Service предоставляет операции над коллекцией привычек
type Service struct {
	store  storage.HabitStorage
	logger *slog.Logger
}

// NewService creates a new habits service
func NewService(store storage.HabitStorage, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// List возвращает коллекцию привычек, упорядоченную по Order
func (s *Service) List(ctx context.Context) (models.Collection, error) {
	return s.store.LoadHabits(ctx)
}

// Add создает новую привычку с валидированным именем в конце списка
func (s *Service) Add(ctx context.Context, name string) (*models.Habit, error) {
	if err := validation.ValidateHabitName(name); err != nil {
		return nil, fmt.Errorf("invalid habit name: %w", err)
	}

	habits, err := s.store.LoadHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	h := &models.Habit{
		ID:          uuid.New().String(),
		Name:        validation.NormalizeHabitName(name),
		CreatedAt:   time.Now(),
		Completions: []string{},
		Order:       len(habits),
	}
	habits = append(habits, h)

	if err := s.store.SaveHabits(ctx, habits, storage.SaveOptions{}); err != nil {
		return nil, fmt.Errorf("failed to save habits: %w", err)
	}

	s.logger.Info("Habit created", "habit_id", h.ID, "name", h.Name)
	return h, nil
}

// Rename изменяет имя привычки. ID, дата создания и отметки не меняются.
func (s *Service) Rename(ctx context.Context, ref, name string) (*models.Habit, error) {
	if err := validation.ValidateHabitName(name); err != nil {
		return nil, fmt.Errorf("invalid habit name: %w", err)
	}

	habits, err := s.store.LoadHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	h, err := findHabit(habits, ref)
	if err != nil {
		return nil, err
	}
	h.Name = validation.NormalizeHabitName(name)

	if err := s.store.SaveHabits(ctx, habits, storage.SaveOptions{}); err != nil {
		return nil, fmt.Errorf("failed to save habits: %w", err)
	}

	return h, nil
}

// SetCompletion проставляет или снимает отметку привычки за день dateKey.
// Операция идемпотентна; пустой dateKey означает "сегодня".
func (s *Service) SetCompletion(ctx context.Context, ref, dateKey string, done bool) (*models.Habit, error) {
	if dateKey == "" {
		dateKey = dateutil.DateKey(time.Now())
	}
	if _, ok := dateutil.ParseDateKey(dateKey); !ok {
		return nil, fmt.Errorf("invalid date key %q: expected YYYY-MM-DD", dateKey)
	}

	habits, err := s.store.LoadHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	h, err := findHabit(habits, ref)
	if err != nil {
		return nil, err
	}
	habit.SetCompletion(h, dateKey, done)

	if err := s.store.SaveHabits(ctx, habits, storage.SaveOptions{}); err != nil {
		return nil, fmt.Errorf("failed to save habits: %w", err)
	}

	s.logger.Debug("Completion updated", "habit_id", h.ID, "date", dateKey, "done", done)
	return h, nil
}

// Delete удаляет привычку и перенумеровывает оставшиеся в 0..n-1,
// сохраняя их относительный порядок.
func (s *Service) Delete(ctx context.Context, ref string) error {
	habits, err := s.store.LoadHabits(ctx)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	target, err := findHabit(habits, ref)
	if err != nil {
		return err
	}

	remaining := make(models.Collection, 0, len(habits)-1)
	for _, h := range habits {
		if h.ID != target.ID {
			remaining = append(remaining, h)
		}
	}
	habit.Renumber(remaining)

	if err := s.store.SaveHabits(ctx, remaining, storage.SaveOptions{}); err != nil {
		return fmt.Errorf("failed to save habits: %w", err)
	}

	s.logger.Info("Habit deleted", "habit_id", target.ID)
	return nil
}

// Find находит привычку по ссылке: точному id, уникальному префиксу id
// или точному имени (без учета регистра).
func (s *Service) Find(ctx context.Context, ref string) (*models.Habit, error) {
	habits, err := s.store.LoadHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	return findHabit(habits, ref)
}

// findHabit разрешает ссылку пользователя в привычку коллекции
func findHabit(habits models.Collection, ref string) (*models.Habit, error) {
	// Точное совпадение id имеет приоритет
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}

	// Уникальный префикс id
	var byPrefix *models.Habit
	for _, h := range habits {
		if strings.HasPrefix(h.ID, ref) {
			if byPrefix != nil {
				return nil, fmt.Errorf("%w: %q", storage.ErrAmbiguousHabitRef, ref)
			}
			byPrefix = h
		}
	}
	if byPrefix != nil {
		return byPrefix, nil
	}

	// Точное имя без учета регистра
	var byName *models.Habit
	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			if byName != nil {
				return nil, fmt.Errorf("%w: %q", storage.ErrAmbiguousHabitRef, ref)
			}
			byName = h
		}
	}
	if byName != nil {
		return byName, nil
	}

	return nil, fmt.Errorf("%w: %q", storage.ErrHabitNotFound, ref)
}
