// Package cli wires configuration, terminal IO and the converter together.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/onepif2kdbx/internal/config"
	"github.com/iudanet/onepif2kdbx/internal/convert"
	"github.com/iudanet/onepif2kdbx/internal/iocli"
	"github.com/iudanet/onepif2kdbx/internal/logging"
	"github.com/iudanet/onepif2kdbx/internal/onepif"
	"github.com/iudanet/onepif2kdbx/internal/registry"
	"github.com/iudanet/onepif2kdbx/internal/target/kdbx"
	"github.com/iudanet/onepif2kdbx/internal/validation"
)

// ErrAborted is returned when the user declines to overwrite the output file.
var ErrAborted = errors.New("aborted by user")

type Cli struct {
	io  iocli.IO
	log logging.Logger
}

func New(io iocli.IO, log logging.Logger) *Cli {
	return &Cli{io: io, log: log}
}

// Run converts cfg.Input into cfg.Output.
func (c *Cli) Run(ctx context.Context, cfg *config.Config) error {
	reg, err := loadRegistry(cfg.TypesFile)
	if err != nil {
		return err
	}

	if err := validation.ValidateOutputPath(cfg.Output, cfg.Input); err != nil {
		return fmt.Errorf("invalid output: %w", err)
	}
	if err := c.confirmOverwrite(cfg.Output, cfg.Force); err != nil {
		return err
	}

	src, err := onepif.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			c.log.Error(ctx, "failed to close input", "error", err)
		}
	}()

	password, err := c.getMasterPassword(cfg.Passwords)
	if err != nil {
		return fmt.Errorf("failed to get master password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	db, err := kdbx.Create(cfg.Output, password)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	log := c.log.With("input", src.Path())
	log.Debug(ctx, "converting", "output", cfg.Output)
	conv := convert.NewConverter(reg, log, convert.Options{SkipTrashed: cfg.SkipTrashed})
	sum, err := conv.Run(ctx, src, db)
	if err != nil {
		return err
	}

	c.printSummary(cfg.Output, sum)
	return nil
}

// ListTypes prints the record types of the type table with their groups.
func (c *Cli) ListTypes(cfg *config.Config) error {
	reg, err := loadRegistry(cfg.TypesFile)
	if err != nil {
		return err
	}
	for _, name := range reg.TypeNames() {
		typ, err := reg.Classify(name)
		if err != nil {
			return err
		}
		c.io.Printf("%-36s %s\n", name, typ.Group)
	}
	return nil
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default()
	}
	return registry.Load(path)
}

// confirmOverwrite asks before replacing an existing file. Without a terminal
// the answer is "no" unless force is set.
func (c *Cli) confirmOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if !c.io.IsTerminal() {
		return fmt.Errorf("%s already exists, use -force to overwrite", path)
	}

	answer, err := c.io.ReadInput(fmt.Sprintf("%s already exists. Overwrite? [y/N]: ", path))
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return nil
	default:
		return ErrAborted
	}
}

// getMasterPassword retrieves master password from various sources with priority:
// 1. Environment variable ONEPIF2KDBX_PASSWORD
// 2. File specified by -password-file
// 3. Command-line parameter -password
// 4. Interactive prompt with confirmation (fallback)
func (c *Cli) getMasterPassword(passwords config.Passwords) (string, error) {
	// Priority 1: Environment variable
	if passwords.FromEnv != "" {
		return passwords.FromEnv, nil
	}

	// Priority 2: File
	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: CLI parameter
	if passwords.FromArgs != "" {
		return passwords.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	password, err := c.io.ReadPassword("Master password for the new database: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	confirm, err := c.io.ReadPassword("Confirm master password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}
	if confirm != password {
		return "", fmt.Errorf("passwords do not match")
	}

	return password, nil
}

func (c *Cli) printSummary(output string, sum convert.Summary) {
	c.io.Printf("Wrote %d entries to %s\n", sum.Entries, output)
	for _, g := range sum.GroupNames() {
		c.io.Printf("  %-24s %d\n", g, sum.Groups[g])
	}
	if sum.Skipped > 0 {
		c.io.Printf("Skipped %d trashed items\n", sum.Skipped)
	}
	if sum.Warnings > 0 {
		c.io.Printf("%d fields were dropped, see warnings above\n", sum.Warnings)
	}
}

func PrintUsage() {
	fmt.Println("onepif2kdbx - convert a 1Password 1PIF export into a KeePass database")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  onepif2kdbx [OPTIONS] input.1pif [output.kdbx]")
	fmt.Println()
	fmt.Println("The input is either a data.1pif file or a .1pif export directory.")
	fmt.Println("The output defaults to <input>.kdbx; .kdbx is appended when missing.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -o, -out PATH           Output KeePass file")
	fmt.Println("  -types PATH             YAML record type table (default: built in)")
	fmt.Println("  -password PASSWORD      Master password (not recommended, use env var or file)")
	fmt.Println("  -password-file PATH     Path to file containing master password")
	fmt.Println("  -skip-trashed           Drop trashed items instead of moving them to the Recycle Bin")
	fmt.Println("  -force                  Overwrite an existing output file")
	fmt.Println("  -list-types             List the known record types and their groups")
	fmt.Println("  -v                      Verbose logging")
	fmt.Println("  -version                Show version information")
	fmt.Println()
	fmt.Println("Master Password Priority (highest to lowest):")
	fmt.Println("  1. " + config.EnvPassword + " environment variable (also read from .env)")
	fmt.Println("  2. -password-file (file path)")
	fmt.Println("  3. -password (command line)")
	fmt.Println("  4. Interactive prompt (fallback)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  onepif2kdbx ~/Desktop/export.1pif")
	fmt.Println("  onepif2kdbx -password-file ~/.kdbx-password -o vault.kdbx export.1pif")
	fmt.Println("  " + config.EnvTypes + "=types.yaml onepif2kdbx export.1pif")
}
