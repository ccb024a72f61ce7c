package cmdutil

import (
	"github.com/growth-blocks/mfe/internal/config"
	"github.com/growth-blocks/mfe/internal/prompt"
)

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE.
// It is created once by the root command and passed into every
// sub-command constructor.
type GlobalConfig struct {
	// Resolved is the configuration of this invocation, nil before
	// PersistentPreRunE ran.
	Resolved *config.Resolved

	// Verbose is the --verbose flag value.
	Verbose bool

	// Prompt answers interactive questions. Nil selects prompt.Interactive.
	Prompt prompt.ChoiceProvider
}

// Config returns the merged configuration, or the defaults when nothing
// was resolved.
func (g *GlobalConfig) Config() *config.Config {
	if g == nil || g.Resolved == nil || g.Resolved.Config == nil {
		return config.DefaultConfig()
	}
	return g.Resolved.Config
}

// ProjectDir returns the resolved project root, "." when unresolved.
func (g *GlobalConfig) ProjectDir() string {
	if g == nil || g.Resolved == nil || g.Resolved.ProjectDir == "" {
		return "."
	}
	return g.Resolved.ProjectDir
}

// ChoiceProvider returns the configured prompt, defaulting to the
// interactive one.
func (g *GlobalConfig) ChoiceProvider() prompt.ChoiceProvider {
	if g != nil && g.Prompt != nil {
		return g.Prompt
	}
	return prompt.Interactive()
}
