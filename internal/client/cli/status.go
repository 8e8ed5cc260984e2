package cli

import (
	"context"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	habitsList, err := c.habits.List(ctx)
	if err != nil {
		return err
	}
	c.io.Printf("Habits: %d\n", len(habitsList))

	totalCompletions := 0
	for _, h := range habitsList {
		totalCompletions += len(h.Completions)
	}
	c.io.Printf("Completions: %d\n", totalCompletions)
	c.io.Println()

	fragment, err := c.identity.Fragment(ctx)
	if err != nil {
		return err
	}
	if fragment == "" {
		c.io.Println("Seed phrase: not set")
	} else {
		c.io.Printf("Seed phrase: set (account code %s)\n", fragment)
	}

	if c.remote.IsConfigured() {
		c.io.Printf("Sync server: %s\n", c.remote.BaseURL())
	} else {
		c.io.Println("Sync server: not configured")
	}

	if ts, err := c.meta.GetLocalUpdatedAt(ctx); err == nil && ts > 0 {
		c.io.Printf("Last local change: %s\n", time.UnixMilli(ts).Format(time.RFC3339))
	}

	return nil
}
