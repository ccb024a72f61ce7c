// Package pipeline composes resolution, materialization and manifest
// rewriting into the create and prepare-integration runs.
package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/microfrontend"
)

// Layout locates the directories of a project. Directory fields are
// relative to ProjectDir.
type Layout struct {
	ProjectDir        string
	MicrofrontendsDir string
	TemplateDir       string
	IntegrationDir    string
}

// Validate checks that every directory is set.
func (l Layout) Validate() error {
	var errs []error
	if l.ProjectDir == "" {
		errs = append(errs, errors.New("project directory is required"))
	}
	if l.MicrofrontendsDir == "" {
		errs = append(errs, errors.New("microfrontends directory is required"))
	}
	if l.TemplateDir == "" {
		errs = append(errs, errors.New("template directory is required"))
	}
	if l.IntegrationDir == "" {
		errs = append(errs, errors.New("integration directory is required"))
	}
	return errors.Join(errs...)
}

func (l Layout) abs(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(l.ProjectDir, filepath.FromSlash(rel))
}

// MicrofrontendDir returns the absolute source directory of name.
func (l Layout) MicrofrontendDir(name string) string {
	return filepath.Join(l.abs(l.MicrofrontendsDir), name)
}

// TemplateRoot returns the absolute template root.
func (l Layout) TemplateRoot() string {
	return l.abs(l.TemplateDir)
}

// IntegrationOutputDir returns the absolute prepare output directory of name.
func (l Layout) IntegrationOutputDir(name string) string {
	return filepath.Join(l.abs(l.IntegrationDir), name)
}

// Rel returns path relative to the project, for messages.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.ProjectDir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// checkName rejects names that would escape the microfrontends root.
func checkName(name string) error {
	if name == "" {
		return mfeerrors.NewUsageError("microfrontend name is required", "")
	}
	if err := microfrontend.ValidateName(name); err != nil {
		return mfeerrors.NewUsageError(err.Error(), "")
	}
	return nil
}

func wrapIO(op string, err error) error {
	var detail *mfeerrors.DetailError
	if errors.As(err, &detail) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
