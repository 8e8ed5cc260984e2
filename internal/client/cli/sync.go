package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/consistency/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	result, err := c.sync.SyncOnce(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	switch result.Status {
	case sync.StatusNotConfigured:
		c.io.Println("Sync server is not configured.")
		c.io.Println("Pass --server and --api-key or set CONSISTENCY_SERVER / CONSISTENCY_API_KEY.")
	case sync.StatusNoSeed:
		c.io.Println("No seed phrase set.")
		c.io.Println("Use 'consistency seed generate' or 'consistency seed set' first.")
	case sync.StatusPushed:
		c.io.Println("✓ Pushed local habits to the server.")
	case sync.StatusPulled:
		c.io.Println("✓ Pulled habits from the server.")
	case sync.StatusUpToDate:
		c.io.Println("✓ Already up to date.")
	case sync.StatusSeedMismatch:
		c.io.Println("⚠ Remote data was written with a different seed phrase.")
		c.io.Println("Nothing was changed. Check the phrase with 'consistency seed show'.")
	}

	return nil
}
