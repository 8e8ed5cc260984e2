package cli

import (
	"context"
	"fmt"
)

// Run выполняет одну команду клиента. Неизвестная команда — ошибка,
// usage печатает вызывающий.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx)
	case "done":
		return c.runSetCompletion(ctx, args, true)
	case "undo":
		return c.runSetCompletion(ctx, args, false)
	case "rename":
		return c.runRename(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "stats":
		return c.runStats(ctx, args)
	case "seed":
		return c.runSeed(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "status":
		return c.runStatus(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
