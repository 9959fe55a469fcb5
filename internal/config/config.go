// Package config collects the converter settings.
//
// Sources, later ones taking precedence:
//
//  1. defaults
//  2. a .env file in the working directory (if present) and the environment
//  3. command-line flags and positional arguments
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Переменные окружения
const (
	EnvPassword = "ONEPIF2KDBX_PASSWORD"
	EnvTypes    = "ONEPIF2KDBX_TYPES"
)

// OutputExt is the extension of KeePass database files.
const OutputExt = ".kdbx"

// ErrUsage is returned when the command line is incomplete or inconsistent.
var ErrUsage = errors.New("invalid usage")

// Passwords holds every source of the master password; the first non-empty
// one in field order wins, with an interactive prompt as the last resort.
type Passwords struct {
	FromEnv  string
	FromFile string
	FromArgs string
}

// Config holds runtime settings of the converter.
type Config struct {
	Passwords   Passwords
	Input       string // 1PIF file or .1pif bundle directory
	Output      string // KeePass file, always ending in .kdbx
	TypesFile   string // optional YAML type table replacing the embedded one
	SkipTrashed bool
	Force       bool // overwrite an existing output file without asking
	Verbose     bool
	ShowVersion bool
	ListTypes   bool // print the type table and exit
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	*c = Config{}
}

// Load builds the configuration from the environment and args
// (without the program name).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	// .env не обязателен
	_ = godotenv.Load()
	loadEnv(cfg)

	if err := parseFlags(cfg, args, io.Discard); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnv(cfg *Config) {
	cfg.Passwords.FromEnv = os.Getenv(EnvPassword)
	if types := strings.TrimSpace(os.Getenv(EnvTypes)); types != "" {
		cfg.TypesFile = types
	}
}

// parseFlags applies flags and positional arguments: input [output].
func parseFlags(cfg *Config, args []string, output io.Writer) error {
	fs := flag.NewFlagSet("onepif2kdbx", flag.ContinueOnError)
	fs.SetOutput(output)

	var out string
	fs.StringVar(&out, "o", "", "output KeePass file (default: <input>.kdbx)")
	fs.StringVar(&out, "out", "", "output KeePass file (default: <input>.kdbx)")
	fs.StringVar(&cfg.TypesFile, "types", cfg.TypesFile, "YAML file with the record type table")
	fs.StringVar(&cfg.Passwords.FromArgs, "password", "", "master password (not recommended, use env var or file)")
	fs.StringVar(&cfg.Passwords.FromFile, "password-file", "", "path to file containing the master password")
	fs.BoolVar(&cfg.SkipTrashed, "skip-trashed", false, "drop trashed items instead of moving them to the Recycle Bin")
	fs.BoolVar(&cfg.Force, "force", false, "overwrite the output file if it exists")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose logging")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "show version information")
	fs.BoolVar(&cfg.ListTypes, "list-types", false, "list the known 1Password record types and exit")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if cfg.ShowVersion || cfg.ListTypes {
		return nil
	}

	rest := fs.Args()
	switch {
	case len(rest) == 0:
		return fmt.Errorf("%w: input file is required", ErrUsage)
	case len(rest) > 2:
		return fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(rest[2:], " "))
	case len(rest) == 2 && out != "":
		return fmt.Errorf("%w: output given both as -o and as an argument", ErrUsage)
	case len(rest) == 2:
		out = rest[1]
	}

	cfg.Input = rest[0]
	if out == "" {
		out = DefaultOutput(cfg.Input)
	}
	cfg.Output = WithOutputExt(out)
	return nil
}

// DefaultOutput derives the output file from the input: "export.1pif" and
// "export.1pif/" both give "export.kdbx".
func DefaultOutput(input string) string {
	input = filepath.Clean(input)
	return strings.TrimSuffix(input, filepath.Ext(input)) + OutputExt
}

// WithOutputExt appends .kdbx unless path already ends with it.
func WithOutputExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), OutputExt) {
		return path
	}
	return path + OutputExt
}
