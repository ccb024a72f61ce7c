package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/manifest"
	"github.com/growth-blocks/mfe/internal/materialize"
	"github.com/growth-blocks/mfe/internal/output"
	"github.com/growth-blocks/mfe/internal/report"
)

// PrepareOptions configures Prepare.
type PrepareOptions struct {
	// Name is the microfrontend to prepare (required).
	Name string

	// Layout locates the project directories (required).
	Layout Layout

	// Settings parameterize the manifest rewrite.
	Settings manifest.IntegrationSettings

	// Exclude holds doublestar patterns left out of the copy.
	Exclude []string

	// Diff renders the manifest changes into the result.
	Diff bool

	// UseColor colors the diff.
	UseColor bool

	// Strict turns manifest schema issues into an error.
	Strict bool

	// OnFile is called with each copied path relative to the output.
	OnFile func(rel string)
}

// Validate checks required options.
func (o PrepareOptions) Validate() error {
	if err := checkName(o.Name); err != nil {
		return err
	}
	if err := materialize.ValidatePatterns(o.Exclude); err != nil {
		return mfeerrors.NewUsageError(err.Error(), "")
	}
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	return manifest.VersionsError(manifest.CheckVersions(o.Settings))
}

// PrepareResult describes a prepared microfrontend.
type PrepareResult struct {
	Name          string
	SourceDir     string
	OutputDir     string
	ChecklistPath string
	// Files are the copied paths relative to OutputDir.
	Files []string
	// Issues are manifest schema violations found after the rewrite.
	Issues []manifest.ValidationIssue
	// Diff is the manifest diff, set when requested and non-empty.
	Diff string
}

// Prepare copies a microfrontend into the integration directory with a
// rewritten manifest and an integration checklist. Nothing is created when
// the source directory or its manifest cannot be read.
func Prepare(ctx context.Context, opts PrepareOptions) (*PrepareResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	log := output.MicrofrontendLogger(opts.Name)
	source := opts.Layout.MicrofrontendDir(opts.Name)
	outDir := opts.Layout.IntegrationOutputDir(opts.Name)

	if err := checkSource(source); err != nil {
		return nil, err
	}
	log.Info("preparing microfrontend for integration",
		"source", opts.Layout.Rel(source),
		"output", opts.Layout.Rel(outDir),
	)

	doc, err := manifest.Load(filepath.Join(source, manifest.FileName))
	if err != nil {
		return nil, err
	}
	log.Debug("read manifest", "keys", len(doc.Keys()))

	prepared := manifest.Transform(doc, opts.Name, opts.Settings)
	data, err := prepared.Marshal()
	if err != nil {
		return nil, err
	}

	validation, err := manifest.Validate(prepared)
	if err != nil {
		return nil, err
	}
	result := &PrepareResult{
		Name:      opts.Name,
		SourceDir: source,
		OutputDir: outDir,
		Issues:    validation.Issues,
	}
	for _, issue := range validation.Issues {
		log.Warn("manifest issue", "issue", issue.String())
	}
	if opts.Strict && !validation.Valid {
		return result, mfeerrors.NewValidationError(
			fmt.Sprintf("prepared manifest has %d schema issue(s)", len(validation.Issues)),
			filepath.Join(source, manifest.FileName),
			"fix the source package.json or drop --strict")
	}

	if opts.Diff {
		before, err := doc.Marshal()
		if err != nil {
			return nil, err
		}
		result.Diff, err = output.ManifestDiff(before, data, opts.UseColor)
		if err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(outDir); err == nil {
		log.Warn("output directory exists, files will be overwritten", "dir", opts.Layout.Rel(outDir))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	err = output.RunWithSpinner(ctx, "Copying "+opts.Name, func() error {
		files, err := materialize.Directory(os.DirFS(source), outDir, materialize.DirOptions{
			Exclude: opts.Exclude,
			OnFile:  opts.OnFile,
		})
		result.Files = files
		return err
	})
	if err != nil {
		return result, wrapIO("copying microfrontend", err)
	}
	log.Info("copied files", "count", len(result.Files))

	if err := os.WriteFile(filepath.Join(outDir, manifest.FileName), data, 0o644); err != nil {
		return result, wrapIO("writing manifest", err)
	}
	log.Info("wrote integration manifest", "name", prepared.String("name"))

	checklistPath, err := report.WriteChecklist(outDir, report.ChecklistData{
		Name:              opts.Name,
		PackageName:       opts.Settings.PackageName(opts.Name),
		StubVersion:       opts.Settings.StubVersion,
		MicrofrontendsDir: filepath.ToSlash(opts.Layout.MicrofrontendsDir),
	})
	if err != nil {
		return result, wrapIO("writing checklist", err)
	}
	result.ChecklistPath = checklistPath
	log.Info("wrote integration checklist", "file", report.ChecklistFileName)

	return result, nil
}

// checkSource fails with a not-found error naming dir when it is missing.
func checkSource(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return mfeerrors.NewNotFoundError(
			fmt.Sprintf("microfrontend source %s is not a directory", dir), dir, "")
	case errors.Is(err, fs.ErrNotExist):
		return mfeerrors.NewNotFoundError(
			fmt.Sprintf("microfrontend directory %s does not exist", dir),
			dir,
			"check the name, or run `mfe list` to see existing microfrontends")
	default:
		return fmt.Errorf("checking %s: %w", dir, err)
	}
}
