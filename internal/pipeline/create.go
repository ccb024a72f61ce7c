package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/growth-blocks/mfe/internal/materialize"
	"github.com/growth-blocks/mfe/internal/microfrontend"
	"github.com/growth-blocks/mfe/internal/output"
	"github.com/growth-blocks/mfe/internal/templates"
)

// CreateOptions configures Create.
type CreateOptions struct {
	// Config is the resolved microfrontend (required).
	Config microfrontend.GenerationConfig

	// Layout locates the project directories (required).
	Layout Layout

	// Template overrides the template tree. Nil uses the project template
	// root, or the embedded template when the project has none.
	Template fs.FS

	// Spec overrides the files to instantiate. Nil uses DefaultCopySpec.
	Spec materialize.CopySpec

	// Strict turns unresolved placeholders into an error.
	Strict bool

	// OnFile is called with each written path relative to the target.
	OnFile func(rel string)
}

// Validate checks required options.
func (o CreateOptions) Validate() error {
	if err := checkName(o.Config.Name); err != nil {
		return err
	}
	return o.Layout.Validate()
}

// CreateResult describes a created microfrontend.
type CreateResult struct {
	Name             string
	TargetDir        string
	TemplateLocation string
	// Files are the written paths relative to TargetDir, in write order.
	Files []string
	// Warnings lists unresolved placeholder reports.
	Warnings []string
}

// Create instantiates the template for a new microfrontend. The target
// directory must not exist. Files written before a failure are left in place.
func Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := opts.Config
	log := output.MicrofrontendLogger(cfg.Name)
	target := opts.Layout.MicrofrontendDir(cfg.Name)

	if err := materialize.EnsureAbsent(target); err != nil {
		return nil, err
	}

	src, location := opts.Template, "<custom>"
	if src == nil {
		var err error
		src, location, err = templates.Source(opts.Layout.TemplateRoot())
		if err != nil {
			return nil, err
		}
	}
	if location == templates.EmbeddedLocation {
		log.Info("project template not found, using the built-in template", "templateDir", opts.Layout.TemplateDir)
	}

	spec := opts.Spec
	if spec == nil {
		spec = materialize.DefaultCopySpec()
	}

	log.Info("creating microfrontend", "dir", opts.Layout.Rel(target))
	output.Debug("instantiating template",
		"template", location,
		"component", cfg.ComponentName,
		"platform", cfg.Platform,
	)

	result := &CreateResult{Name: cfg.Name, TargetDir: target, TemplateLocation: location}
	files, err := materialize.Apply(src, target, spec, cfg.Placeholders(), materialize.ApplyOptions{
		Strict: opts.Strict,
		OnFile: func(item materialize.CopyItem, rel string) {
			log.Debug("created file", "path", rel, "kind", item.Label)
			if opts.OnFile != nil {
				opts.OnFile(rel)
			}
		},
		OnUnresolved: func(rel string, tokens []string) {
			msg := fmt.Sprintf("%s: unresolved placeholders %s", rel, strings.Join(tokens, ", "))
			result.Warnings = append(result.Warnings, msg)
			log.Warn("unresolved placeholders left verbatim", "path", rel, "tokens", strings.Join(tokens, ", "))
		},
	})
	result.Files = files
	if err != nil {
		return result, wrapIO("creating microfrontend", err)
	}

	return result, nil
}
