package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Config{Input: "x", Verbose: true}
	c.LoadDefaults()
	assert.Equal(t, Config{}, c)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "input only",
			args: []string{"export.1pif"},
			want: Config{Input: "export.1pif", Output: "export.kdbx"},
		},
		{
			name: "bundle directory",
			args: []string{"backup/export.1pif/"},
			want: Config{Input: "backup/export.1pif/", Output: "backup/export.kdbx"},
		},
		{
			name: "positional output without extension",
			args: []string{"export.1pif", "vault"},
			want: Config{Input: "export.1pif", Output: "vault.kdbx"},
		},
		{
			name: "flag output",
			args: []string{"-o", "vault.kdbx", "export.1pif"},
			want: Config{Input: "export.1pif", Output: "vault.kdbx"},
		},
		{
			name: "long flag output",
			args: []string{"-out", "vault.db", "export.1pif"},
			want: Config{Input: "export.1pif", Output: "vault.db.kdbx"},
		},
		{
			name: "all flags",
			args: []string{"-types", "t.yaml", "-password", "pw", "-password-file", "pw.txt",
				"-skip-trashed", "-force", "-v", "export.1pif"},
			want: Config{
				Input: "export.1pif", Output: "export.kdbx", TypesFile: "t.yaml",
				Passwords:   Passwords{FromArgs: "pw", FromFile: "pw.txt"},
				SkipTrashed: true, Force: true, Verbose: true,
			},
		},
		{
			name: "version needs no input",
			args: []string{"-version"},
			want: Config{ShowVersion: true},
		},
		{
			name: "list types needs no input",
			args: []string{"-list-types", "-types", "my.yaml"},
			want: Config{ListTypes: true, TypesFile: "my.yaml"},
		},
		{name: "missing input", args: []string{}, wantErr: true},
		{name: "too many arguments", args: []string{"a", "b", "c"}, wantErr: true},
		{name: "output twice", args: []string{"-o", "x.kdbx", "a", "b"}, wantErr: true},
		{name: "unknown flag", args: []string{"-nope", "a"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			var out bytes.Buffer
			err := parseFlags(&cfg, tt.args, &out)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(EnvPassword, "from-env-password")
	t.Setenv(EnvTypes, "env-types.yaml")

	cfg, err := Load([]string{"export.1pif"})
	require.NoError(t, err)
	assert.Equal(t, "from-env-password", cfg.Passwords.FromEnv)
	assert.Equal(t, "env-types.yaml", cfg.TypesFile)

	// флаг переопределяет окружение
	cfg, err = Load([]string{"-types", "flag-types.yaml", "export.1pif"})
	require.NoError(t, err)
	assert.Equal(t, "flag-types.yaml", cfg.TypesFile)
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, "export.kdbx", DefaultOutput("export.1pif"))
	assert.Equal(t, "export.kdbx", DefaultOutput("export.1pif/"))
	assert.Equal(t, "data.kdbx", DefaultOutput("data"))
}

func TestWithOutputExt(t *testing.T) {
	assert.Equal(t, "a.kdbx", WithOutputExt("a.kdbx"))
	assert.Equal(t, "a.KDBX", WithOutputExt("a.KDBX"))
	assert.Equal(t, "a.kdb.kdbx", WithOutputExt("a.kdb"))
	assert.Equal(t, "a.kdbx", WithOutputExt("a"))
}
