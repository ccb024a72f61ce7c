package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		fmt.Fprintf(&sb, "  %s: %s\n", err.Field, err.Message)
	}
	return sb.String()
}

// Validate checks structural constraints of cfg. Version strings are checked
// separately by the manifest package.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	dirs := []struct {
		field string
		value string
	}{
		{"microfrontendsDir", cfg.MicrofrontendsDir},
		{"templateDir", cfg.TemplateDir},
		{"integrationDir", cfg.IntegrationDir},
	}
	for _, d := range dirs {
		if strings.TrimSpace(d.value) == "" {
			errs = append(errs, ValidationError{Field: d.field, Message: "must not be empty"})
			continue
		}
		if filepath.IsAbs(d.value) {
			errs = append(errs, ValidationError{Field: d.field, Message: "must be relative to the project directory"})
			continue
		}
		if clean := filepath.ToSlash(filepath.Clean(d.value)); clean == ".." || strings.HasPrefix(clean, "../") {
			errs = append(errs, ValidationError{Field: d.field, Message: "must stay inside the project directory"})
		}
	}

	if !strings.HasPrefix(cfg.PackageScope, "@") || strings.Contains(cfg.PackageScope, "/") {
		errs = append(errs, ValidationError{Field: "packageScope", Message: "must look like @scope"})
	}

	if strings.TrimSpace(cfg.Category) == "" {
		errs = append(errs, ValidationError{Field: "category", Message: "must not be empty"})
	}

	for name := range cfg.PeerDependencies {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, ValidationError{Field: "peerDependencies", Message: "package names must not be empty"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
