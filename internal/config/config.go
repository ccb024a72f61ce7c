// Package config provides configuration loading and management.
package config

import "maps"

// Default values for every configuration key.
const (
	DefaultMicrofrontendsDir = "src/microfrontends"
	DefaultTemplateDir       = "src/microfrontends/_template"
	DefaultIntegrationDir    = "integration-ready"
	DefaultCategory          = "pages"
	DefaultPackageScope      = "@growth-blocks"
	DefaultRepositoryURL     = "https://gitlab.tcsbank.ru/ded-pwa-forms/growth-blocks"
	DefaultStubVersion       = "0.0.0-stub"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the mfe configuration.
// Loaded from <project>/.mfe.yaml or ~/.mfe/config.yaml.
type Config struct {
	// MicrofrontendsDir is the project-relative root holding every microfrontend.
	// Env: MFE_MICROFRONTENDS_DIR
	MicrofrontendsDir string `mapstructure:"microfrontendsDir" yaml:"microfrontendsDir"`

	// TemplateDir is the project-relative template root seeding new microfrontends.
	// Env: MFE_TEMPLATE_DIR
	TemplateDir string `mapstructure:"templateDir" yaml:"templateDir"`

	// IntegrationDir is the project-relative output root of prepare.
	// Env: MFE_INTEGRATION_DIR
	IntegrationDir string `mapstructure:"integrationDir" yaml:"integrationDir"`

	// Category is substituted for {{MICROFRONTEND_CATEGORY}}.
	// Env: MFE_CATEGORY
	Category string `mapstructure:"category" yaml:"category"`

	// PackageScope prefixes the package name of prepared manifests.
	// Env: MFE_PACKAGE_SCOPE
	PackageScope string `mapstructure:"packageScope" yaml:"packageScope"`

	// RepositoryURL is written to the repository block of prepared manifests.
	// Env: MFE_REPOSITORY_URL
	RepositoryURL string `mapstructure:"repositoryURL" yaml:"repositoryURL"`

	// StubVersion is the version written to prepared manifests.
	// Env: MFE_STUB_VERSION
	StubVersion string `mapstructure:"stubVersion" yaml:"stubVersion"`

	// PeerDependencies are merged into prepared manifests.
	PeerDependencies map[string]string `mapstructure:"peerDependencies" yaml:"peerDependencies"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultPeerDependencies returns the peer dependencies every prepared
// microfrontend declares.
func DefaultPeerDependencies() map[string]string {
	return map[string]string{
		DefaultPackageScope + "/mocks": "^" + DefaultStubVersion,
		"classnames":                   "^" + DefaultStubVersion,
	}
}

// DefaultConfig returns a Config with all default values populated.
// Used by `mfe config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		MicrofrontendsDir: DefaultMicrofrontendsDir,
		TemplateDir:       DefaultTemplateDir,
		IntegrationDir:    DefaultIntegrationDir,
		Category:          DefaultCategory,
		PackageScope:      DefaultPackageScope,
		RepositoryURL:     DefaultRepositoryURL,
		StubVersion:       DefaultStubVersion,
		PeerDependencies:  DefaultPeerDependencies(),
	}
}

// WithDefaults returns a copy of c with every empty field set to its default.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&out.MicrofrontendsDir, def.MicrofrontendsDir)
	fill(&out.TemplateDir, def.TemplateDir)
	fill(&out.IntegrationDir, def.IntegrationDir)
	fill(&out.Category, def.Category)
	fill(&out.PackageScope, def.PackageScope)
	fill(&out.RepositoryURL, def.RepositoryURL)
	fill(&out.StubVersion, def.StubVersion)

	if len(out.PeerDependencies) == 0 {
		out.PeerDependencies = def.PeerDependencies
	} else {
		out.PeerDependencies = maps.Clone(out.PeerDependencies)
	}

	return &out
}
