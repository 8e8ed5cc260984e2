package cli

import (
	"context"
	"fmt"
	"strconv"
)

const defaultSeedWords = 12

func (c *Cli) runSeed(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: consistency seed <generate|set|show|clear>")
	}

	switch args[0] {
	case "generate":
		return c.runSeedGenerate(ctx, args[1:])
	case "set":
		return c.runSeedSet(ctx)
	case "show":
		return c.runSeedShow(ctx)
	case "clear":
		return c.runSeedClear(ctx)
	default:
		return fmt.Errorf("unknown seed subcommand: %s", args[0])
	}
}

// runSeedGenerate печатает новую фразу и сразу запоминает ее
func (c *Cli) runSeedGenerate(ctx context.Context, args []string) error {
	words := defaultSeedWords
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid word count %q", args[0])
		}
		words = n
	}

	phrase, err := c.identity.Generate(words)
	if err != nil {
		return fmt.Errorf("failed to generate seed phrase: %w", err)
	}

	c.io.Println("Your new seed phrase:")
	c.io.Println()
	c.io.Printf("  %s\n", phrase)
	c.io.Println()
	c.io.Println("Write it down. Anyone with this phrase can read and change your data;")
	c.io.Println("without it your synced data cannot be recovered.")

	fragment, err := c.identity.SetSeed(ctx, phrase)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Account code: %s\n", fragment)
	return nil
}

// runSeedSet вводит существующую фразу с другого устройства
func (c *Cli) runSeedSet(ctx context.Context) error {
	phrase, err := c.io.ReadSecret("Seed phrase: ")
	if err != nil {
		return fmt.Errorf("failed to read seed phrase: %w", err)
	}

	fragment, err := c.identity.SetSeed(ctx, phrase)
	if err != nil {
		return err
	}

	c.io.Printf("Seed phrase saved. Account code: %s\n", fragment)
	c.io.Println("Compare the account code with your other device before syncing.")
	return nil
}

func (c *Cli) runSeedShow(ctx context.Context) error {
	fragment, err := c.identity.Fragment(ctx)
	if err != nil {
		return err
	}
	if fragment == "" {
		c.io.Println("No seed phrase set.")
		c.io.Println("Use 'consistency seed generate' or 'consistency seed set'.")
		return nil
	}

	// Сама фраза наружу не печатается, только код аккаунта
	c.io.Printf("Account code: %s\n", fragment)
	return nil
}

func (c *Cli) runSeedClear(ctx context.Context) error {
	if err := c.identity.ClearSeed(ctx); err != nil {
		return err
	}
	c.io.Println("Seed phrase removed. Local habits are kept;")
	c.io.Println("remote data stays available to anyone holding the phrase.")
	return nil
}
