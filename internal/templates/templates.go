// Package templates provides the embedded default microfrontend template
// and locates the template root used for new microfrontends.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/growth-blocks/mfe/internal/materialize"
)

//go:embed all:default
var defaultFS embed.FS

const defaultRoot = "default"

// EmbeddedLocation describes the embedded template in messages.
const EmbeddedLocation = "<embedded>"

// Default returns the embedded default template tree.
func Default() fs.FS {
	sub, err := fs.Sub(defaultFS, defaultRoot)
	if err != nil {
		panic(fmt.Sprintf("embedded template: %v", err))
	}
	return sub
}

// Files lists the files of a template tree, slash-separated and sorted.
func Files(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// Source returns the template root at dir when it exists, and the embedded
// template otherwise. The second value describes where the template came from.
func Source(dir string) (fs.FS, string, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return os.DirFS(dir), dir, nil
	case err == nil:
		return nil, "", fmt.Errorf("template root %s is not a directory", dir)
	case errors.Is(err, fs.ErrNotExist):
		return Default(), EmbeddedLocation, nil
	default:
		return nil, "", fmt.Errorf("checking template root: %w", err)
	}
}

// Seed writes the embedded template into dir, which must not exist yet.
func Seed(dir string, onFile func(rel string)) ([]string, error) {
	if err := materialize.EnsureAbsent(dir); err != nil {
		return nil, err
	}
	return materialize.Directory(Default(), filepath.Clean(dir), materialize.DirOptions{OnFile: onFile})
}
