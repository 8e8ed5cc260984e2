package cli

import (
	"context"
	"time"

	"github.com/iudanet/consistency/internal/habit"
	"github.com/iudanet/consistency/internal/models"
)

func (c *Cli) runStats(ctx context.Context, args []string) error {
	now := time.Now()

	// С аргументом — статистика одной привычки
	if len(args) > 0 {
		h, err := c.habits.Find(ctx, args[0])
		if err != nil {
			return err
		}
		c.printStats(h, now)
		return nil
	}

	habitsList, err := c.habits.List(ctx)
	if err != nil {
		return err
	}
	if len(habitsList) == 0 {
		c.io.Println("No habits yet.")
		return nil
	}

	for _, h := range habitsList {
		c.printStats(h, now)
		c.io.Println()
	}
	return nil
}

func (c *Cli) printStats(h *models.Habit, now time.Time) {
	stats := habit.CompletionStats(h, now)
	streak := habit.CalcStreak(h, now)

	c.io.Printf("%s\n", h.Name)
	c.io.Printf("  Completed:  %d of %d day(s) (%d%%)\n", stats.TotalCompletions, stats.TotalDays, stats.CompletionPercent)
	c.io.Printf("  Streak:     %d day(s)\n", streak)
}
