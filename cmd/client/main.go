package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/consistency/internal/client/api"
	"github.com/iudanet/consistency/internal/client/cli"
	"github.com/iudanet/consistency/internal/client/habits"
	"github.com/iudanet/consistency/internal/client/identity"
	"github.com/iudanet/consistency/internal/client/iocli"
	"github.com/iudanet/consistency/internal/client/storage/boltdb"
	"github.com/iudanet/consistency/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги; server и api-key по умолчанию берутся из окружения
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", os.Getenv("CONSISTENCY_SERVER"), "Sync server URL")
	apiKey := flag.String("api-key", os.Getenv("CONSISTENCY_API_KEY"), "Sync server API key")
	dbPath := flag.String("db", "consistency.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	remote := api.NewClient(*serverURL, *apiKey)
	habitsSvc := habits.NewService(boltStorage, logger)
	identitySvc := identity.NewService(boltStorage)
	syncSvc := sync.NewService(remote, boltStorage, boltStorage, boltStorage, logger)

	app := cli.New(iocli.NewStdio(), remote, habitsSvc, identitySvc, syncSvc, boltStorage)

	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Consistency Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
