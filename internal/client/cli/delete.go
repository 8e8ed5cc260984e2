package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing habit reference. Usage: consistency delete <habit>")
	}

	h, err := c.habits.Find(ctx, args[0])
	if err != nil {
		return err
	}

	// Удаление необратимо локально, поэтому переспрашиваем
	answer, err := c.io.ReadInput(fmt.Sprintf("Delete habit %q with %d completion(s)? [y/N]: ", h.Name, len(h.Completions)))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if answer != "y" && answer != "Y" {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.habits.Delete(ctx, h.ID); err != nil {
		return err
	}

	c.io.Printf("Deleted habit %q\n", h.Name)
	return nil
}
