// Package materialize writes microfrontend files to disk: templated files
// with placeholder substitution, and byte-for-byte directory mirrors.
//
// The target existence check happens once, before any write. Nothing is
// rolled back when a later write fails.
package materialize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/placeholder"
)

// Default permissions for created entries.
const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// EnsureAbsent fails with an exists error when anything is present at path.
func EnsureAbsent(path string) error {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return mfeerrors.NewExistsError(
			fmt.Sprintf("%s already exists", filepath.Base(path)),
			path,
			"choose another name or remove the existing directory",
		)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("checking %s: %w", path, err)
	}
}

// writeFile writes data to name, creating missing parent directories.
// An existing file is overwritten.
func writeFile(name string, data []byte, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(name), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", name, err)
	}
	if err := os.WriteFile(name, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// render reads a template from src and substitutes m into it.
func render(src fs.FS, templatePath string, m placeholder.Map) (string, error) {
	data, err := fs.ReadFile(src, path.Clean(templatePath))
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", templatePath, err)
	}
	return placeholder.Substitute(string(data), m), nil
}

// File reads templatePath from src, substitutes m and writes the result to
// targetPath.
func File(src fs.FS, templatePath, targetPath string, m placeholder.Map) error {
	text, err := render(src, templatePath, m)
	if err != nil {
		return err
	}
	return writeFile(targetPath, []byte(text), filePerm)
}
