package materialize

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DirOptions controls Directory.
type DirOptions struct {
	// Exclude holds doublestar patterns matched against slash-separated
	// paths relative to the source root. A matching directory is skipped
	// with everything below it.
	Exclude []string

	// OnFile is called after each file is copied.
	OnFile func(rel string)
}

// ValidatePatterns reports the first malformed exclude pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	return nil
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// Directory mirrors src into destDir byte for byte. destDir is created even
// when src is empty. File permissions are kept, plus owner write. It
// returns the copied files relative to destDir, slash-separated, in walk
// order.
func Directory(src fs.FS, destDir string, opts DirOptions) ([]string, error) {
	if err := ValidatePatterns(opts.Exclude); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(destDir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating %s: %w", destDir, err)
	}

	var copied []string
	err := fs.WalkDir(src, ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if excluded(rel, opts.Exclude) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(destDir, filepath.FromSlash(rel))
		if d.IsDir() {
			return os.MkdirAll(target, dirPerm)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		data, err := fs.ReadFile(src, rel)
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}
		perm := info.Mode().Perm() | 0o200
		if perm == 0o200 {
			perm = filePerm
		}
		if err := writeFile(target, data, perm); err != nil {
			return err
		}

		copied = append(copied, rel)
		if opts.OnFile != nil {
			opts.OnFile(rel)
		}
		return nil
	})

	return copied, err
}
