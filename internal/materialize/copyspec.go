package materialize

import (
	"fmt"
	"io/fs"
	"path/filepath"

	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/placeholder"
)

// CopyItem maps one template file to its target. Both paths are
// slash-separated and relative; Target may contain placeholders.
type CopyItem struct {
	Template string
	Target   string
	Label    string
}

// CopySpec is the ordered list of files instantiated for a microfrontend.
type CopySpec []CopyItem

// DefaultCopySpec returns the files of a new microfrontend, in write order.
func DefaultCopySpec() CopySpec {
	fileName := placeholder.ComponentFileName.String()
	return CopySpec{
		{Template: "package.json", Target: "package.json", Label: "manifest"},
		{Template: "src/index.ts", Target: "src/index.ts", Label: "entry point"},
		{Template: "src/types.ts", Target: "src/types.ts", Label: "type declarations"},
		{Template: "src/styles.module.css", Target: "src/styles.module.css", Label: "styles"},
		{Template: "src/__stories__/index.stories.tsx.template", Target: "src/__stories__/index.stories.tsx", Label: "stories"},
		{Template: "src/" + fileName + ".tsx", Target: "src/" + fileName + ".tsx", Label: "component"},
	}
}

// ApplyOptions controls Apply.
type ApplyOptions struct {
	// Strict fails on placeholder-shaped tokens left after substitution
	// instead of reporting them through OnUnresolved.
	Strict bool

	// OnFile is called after each file is written with the item and the
	// resolved target path relative to the target directory.
	OnFile func(item CopyItem, target string)

	// OnUnresolved is called for every written file that still contains
	// placeholder-shaped tokens.
	OnUnresolved func(target string, tokens []string)
}

// Apply instantiates every item of spec into targetDir, in order. The first
// failure stops the run; files written before it stay on disk. It returns
// the written targets relative to targetDir.
func Apply(src fs.FS, targetDir string, spec CopySpec, m placeholder.Map, opts ApplyOptions) ([]string, error) {
	written := make([]string, 0, len(spec))

	for _, item := range spec {
		target := placeholder.Substitute(item.Target, m)
		if left := placeholder.Scan(target); len(left) > 0 {
			return written, mfeerrors.NewValidationError(
				fmt.Sprintf("target path %q has unresolved placeholders %v", target, left),
				item.Template, "")
		}

		text, err := render(src, item.Template, m)
		if err != nil {
			return written, err
		}

		if left := placeholder.Scan(text); len(left) > 0 {
			if opts.Strict {
				return written, mfeerrors.NewValidationError(
					fmt.Sprintf("unresolved placeholders %v", left),
					item.Template,
					"remove the tokens from the template or drop --strict")
			}
			if opts.OnUnresolved != nil {
				opts.OnUnresolved(target, left)
			}
		}

		if err := writeFile(filepath.Join(targetDir, filepath.FromSlash(target)), []byte(text), filePerm); err != nil {
			return written, err
		}
		written = append(written, target)
		if opts.OnFile != nil {
			opts.OnFile(item, target)
		}
	}

	return written, nil
}
