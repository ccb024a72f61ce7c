// Package stories finds microfrontends and their Storybook stories the way
// the sandbox configuration does.
package stories

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/growth-blocks/mfe/internal/manifest"
	"github.com/growth-blocks/mfe/internal/output"
)

// StoryPattern matches story modules below a microfrontend directory.
const StoryPattern = "**/*.stories.{js,jsx,ts,tsx}"

// Microfrontend is one directory under the microfrontends root.
type Microfrontend struct {
	Name string
	Dir  string
	// Platform is derived from the name prefix; empty when there is none.
	Platform string
	// Package is the manifest name; empty when package.json is missing or invalid.
	Package string
	// Stories lists story files relative to Dir.
	Stories []string
	// HasComponent reports whether src/<name>.tsx exists.
	HasComponent bool
}

var platformPrefixes = []struct {
	prefix   string
	platform string
}{
	{"desktop-", "desktop"},
	{"mobile-", "mobile"},
	{"independent-", "common"},
}

// PlatformOf returns the platform encoded in a microfrontend name.
func PlatformOf(name string) string {
	for _, p := range platformPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.platform
		}
	}
	return ""
}

// Discover lists microfrontends under root, sorted by name. Hidden
// directories and the names in skip (such as the template root) are left
// out. A missing root yields an empty list.
func Discover(root string, skip ...string) ([]Microfrontend, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	var out []Microfrontend
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || strings.HasPrefix(name, ".") || slices.Contains(skip, name) {
			continue
		}

		mf, err := inspect(filepath.Join(root, name))
		if err != nil {
			return nil, err
		}
		out = append(out, mf)
	}

	slices.SortFunc(out, func(a, b Microfrontend) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func inspect(dir string) (Microfrontend, error) {
	name := filepath.Base(dir)
	mf := Microfrontend{Name: name, Dir: dir, Platform: PlatformOf(name)}

	found, err := doublestar.Glob(os.DirFS(dir), StoryPattern, doublestar.WithFilesOnly())
	if err != nil {
		return mf, fmt.Errorf("scanning stories in %s: %w", dir, err)
	}
	slices.Sort(found)
	mf.Stories = found

	if doc, err := manifest.Load(filepath.Join(dir, manifest.FileName)); err == nil {
		mf.Package = doc.String("name")
	} else {
		output.Debug("skipping manifest", "microfrontend", name, "err", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "src", name+".tsx")); err == nil {
		mf.HasComponent = true
	}
	return mf, nil
}

// Rows converts discovered microfrontends into table rows.
func Rows(mfs []Microfrontend) []output.MicrofrontendRow {
	rows := make([]output.MicrofrontendRow, 0, len(mfs))
	for _, mf := range mfs {
		platform := mf.Platform
		if platform == "" {
			platform = "-"
		}
		rows = append(rows, output.MicrofrontendRow{
			Name:      mf.Name,
			Platform:  platform,
			Package:   mf.Package,
			Stories:   len(mf.Stories),
			Component: mf.HasComponent,
		})
	}
	return rows
}
