package cmdutil

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/growth-blocks/mfe/internal/config"
	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/manifest"
	"github.com/growth-blocks/mfe/internal/pipeline"
)

// Layout builds the pipeline layout from the resolved configuration,
// which must pass config.Validate.
func Layout(g *GlobalConfig) (pipeline.Layout, error) {
	cfg := g.Config()
	if err := ValidateConfig(g); err != nil {
		return pipeline.Layout{}, err
	}
	return pipeline.Layout{
		ProjectDir:        g.ProjectDir(),
		MicrofrontendsDir: cfg.MicrofrontendsDir,
		TemplateDir:       cfg.TemplateDir,
		IntegrationDir:    cfg.IntegrationDir,
	}, nil
}

// ValidateConfig runs config.Validate and reports failures as a
// validation error located at the config file.
func ValidateConfig(g *GlobalConfig) error {
	err := config.Validate(g.Config())
	if err == nil {
		return nil
	}

	location := ""
	if g != nil && g.Resolved != nil {
		location = g.Resolved.ConfigPath
	}
	message := err.Error()
	var verrs config.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, v := range verrs {
			fields = append(fields, fmt.Sprintf("%s %s", v.Field, v.Message))
		}
		message = "invalid configuration: " + strings.Join(fields, "; ")
	}
	return mfeerrors.NewValidationError(message, location, "run `mfe config vet` for details")
}

// Settings builds the manifest rewrite settings from cfg.
func Settings(cfg *config.Config) manifest.IntegrationSettings {
	s := manifest.DefaultSettings()
	if cfg == nil {
		return s
	}
	if cfg.PackageScope != "" {
		s.Scope = cfg.PackageScope
	}
	if cfg.StubVersion != "" {
		s.StubVersion = cfg.StubVersion
	}
	if cfg.RepositoryURL != "" {
		s.RepositoryURL = cfg.RepositoryURL
	}
	if len(cfg.PeerDependencies) > 0 {
		s.PeerDependencies = maps.Clone(cfg.PeerDependencies)
	}
	return s
}
