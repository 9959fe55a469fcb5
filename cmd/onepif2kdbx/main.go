package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/onepif2kdbx/internal/cli"
	"github.com/iudanet/onepif2kdbx/internal/config"
	"github.com/iudanet/onepif2kdbx/internal/iocli"
	"github.com/iudanet/onepif2kdbx/internal/logging"
	"github.com/iudanet/onepif2kdbx/internal/registry"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, config.ErrUsage) {
			cli.PrintUsage()
		}
		os.Exit(1)
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	app := cli.New(iocli.NewStdio(), logging.New(os.Stderr, cfg.Verbose))

	if cfg.ListTypes {
		if err := app.ListTypes(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Прерываем конвертацию по Ctrl+C, файл при этом не пишется
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, registry.ErrUnknownRecordType) {
			fmt.Fprintln(os.Stderr, "Run with -list-types to see the known types, or pass -types with an extended table.")
		}
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("onepif2kdbx\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
