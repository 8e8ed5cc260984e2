package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing habit name. Usage: consistency add <name>")
	}

	// Имя можно передать несколькими аргументами без кавычек
	name := strings.Join(args, " ")

	h, err := c.habits.Add(ctx, name)
	if err != nil {
		return err
	}

	c.io.Printf("Added habit %q (id %s)\n", h.Name, shortID(h.ID))
	return nil
}

func (c *Cli) runRename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: consistency rename <habit> <new name>")
	}

	name := strings.Join(args[1:], " ")
	h, err := c.habits.Rename(ctx, args[0], name)
	if err != nil {
		return err
	}

	c.io.Printf("Renamed habit %s to %q\n", shortID(h.ID), h.Name)
	return nil
}

// shortID усекает uuid до первого блока: его достаточно как ссылки
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
