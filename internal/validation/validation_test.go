package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid password",
			password: "correct horse",
			wantErr:  false,
		},
		{
			name:     "valid password - min length",
			password: "12345678",
			wantErr:  false,
		},
		{
			name:     "invalid - empty",
			password: "",
			wantErr:  true,
			errMsg:   "password cannot be empty",
		},
		{
			name:     "invalid - too short",
			password: "1234567",
			wantErr:  true,
			errMsg:   "at least 8 characters",
		},
		{
			name:     "invalid - whitespace",
			password: "          ",
			wantErr:  true,
			errMsg:   "whitespace only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.1pif")
	require.NoError(t, os.WriteFile(input, []byte("{}"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.kdbx"), 0o700))

	tests := []struct {
		name    string
		output  string
		input   string
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid",
			output: filepath.Join(dir, "out.kdbx"),
			input:  input,
		},
		{
			name:   "valid - upper case extension",
			output: filepath.Join(dir, "OUT.KDBX"),
		},
		{
			name:    "invalid - empty",
			output:  "",
			wantErr: true,
			errMsg:  "cannot be empty",
		},
		{
			name:    "invalid - extension",
			output:  filepath.Join(dir, "out.db"),
			wantErr: true,
			errMsg:  ".kdbx extension",
		},
		{
			name:    "invalid - missing directory",
			output:  filepath.Join(dir, "missing", "out.kdbx"),
			wantErr: true,
			errMsg:  "output directory",
		},
		{
			name:    "invalid - directory",
			output:  filepath.Join(dir, "sub.kdbx"),
			wantErr: true,
			errMsg:  "is a directory",
		},
		{
			name:    "invalid - parent is a file",
			output:  filepath.Join(input, "out.kdbx"),
			wantErr: true,
			errMsg:  "output directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.output, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOutputPath_SameAsInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.kdbx")

	err := ValidateOutputPath(path, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}
