// Package validation checks user-supplied settings before any work is done.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MinPasswordLen минимальная длина master password
const MinPasswordLen = 8

// OutputExt расширение файла базы KeePass
const OutputExt = ".kdbx"

// ValidatePassword проверяет минимальные требования к master password
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot consist of whitespace only")
	}

	return nil
}

// ValidateOutputPath проверяет, что базу можно записать в output:
// каталог существует, сам путь не является каталогом и не совпадает с входным файлом
func ValidateOutputPath(output, input string) error {
	if output == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	if !strings.EqualFold(filepath.Ext(output), OutputExt) {
		return fmt.Errorf("output file must have %s extension", OutputExt)
	}

	dir := filepath.Dir(output)
	st, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory %s: %w", dir, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", dir)
	}

	if st, err := os.Stat(output); err == nil && st.IsDir() {
		return fmt.Errorf("output path %s is a directory", output)
	}

	if input != "" {
		in, errIn := filepath.Abs(input)
		out, errOut := filepath.Abs(output)
		if errIn == nil && errOut == nil && in == out {
			return fmt.Errorf("output path must differ from input path")
		}
	}

	return nil
}
