package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/consistency/internal/habit"
)

// runSetCompletion обрабатывает команды done и undo: общая логика,
// различие только в направлении отметки
func (c *Cli) runSetCompletion(ctx context.Context, args []string, done bool) error {
	verb := "done"
	if !done {
		verb = "undo"
	}
	if len(args) == 0 {
		return fmt.Errorf("missing habit reference. Usage: consistency %s <habit> [date]", verb)
	}

	ref := args[0]
	dateKey := ""
	if len(args) > 1 {
		dateKey = args[1]
	}

	h, err := c.habits.SetCompletion(ctx, ref, dateKey, done)
	if err != nil {
		return err
	}

	if done {
		c.io.Printf("Marked %q completed", h.Name)
	} else {
		c.io.Printf("Removed completion for %q", h.Name)
	}
	if dateKey != "" {
		c.io.Printf(" on %s", dateKey)
	}
	c.io.Println()

	if done {
		if streak := habit.CalcStreak(h, time.Now()); streak > 1 {
			c.io.Printf("Streak: %d days\n", streak)
		}
	}

	return nil
}
