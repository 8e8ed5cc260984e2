package cli

import (
	"context"
	"time"

	"github.com/iudanet/consistency/internal/dateutil"
	"github.com/iudanet/consistency/internal/habit"
)

func (c *Cli) runList(ctx context.Context) error {
	habitsList, err := c.habits.List(ctx)
	if err != nil {
		return err
	}

	if len(habitsList) == 0 {
		c.io.Println("No habits yet.")
		c.io.Println()
		c.io.Println("Use 'consistency add <name>' to add your first habit.")
		return nil
	}

	now := time.Now()
	todayKey := dateutil.DateKey(now)

	c.io.Printf("Habits (%d):\n", len(habitsList))
	c.io.Println()
	for _, h := range habitsList {
		mark := " "
		if habit.IsCompletedOn(h, todayKey) {
			mark = "x"
		}
		streak := habit.CalcStreak(h, now)

		c.io.Printf("  [%s] %s\n", mark, h.Name)
		c.io.Printf("      id %s", shortID(h.ID))
		if streak > 0 {
			c.io.Printf(", streak %d", streak)
		}
		c.io.Println()
	}

	return nil
}
