// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/growth-blocks/mfe/internal/cmd/config"
	templatecmd "github.com/growth-blocks/mfe/internal/cmd/template"
	"github.com/growth-blocks/mfe/internal/cmdutil"
	"github.com/growth-blocks/mfe/internal/config"
	"github.com/growth-blocks/mfe/internal/output"
	"github.com/growth-blocks/mfe/internal/version"
)

// NewRootCmd creates the root command of the mfe binary.
func NewRootCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "mfe",
		Short: "Microfrontend scaffolding toolkit",
		Long: `mfe creates microfrontends from the project template and prepares
them for integration into a host project.

It provides commands to:
  - Create a microfrontend from the template
  - Prepare a microfrontend for integration
  - List microfrontends and their stories
  - Seed and inspect the project template`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindGlobals(c, g)

	c.AddCommand(
		NewCreateCmd(g),
		NewPrepareCmd(g),
		NewListCmd(g),
		templatecmd.NewTemplateCmd(g),
		configcmd.NewConfigCmd(g),
		NewVersionCmd(g),
	)

	return c
}

// NewCreateMicrofrontendCmd creates the root command of the standalone
// create-microfrontend binary.
func NewCreateMicrofrontendCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	c := NewCreateCmd(g)
	c.Use = "create-microfrontend <name> [description] [author]"
	standalone(c, g)
	return c
}

// NewPrepareIntegrationCmd creates the root command of the standalone
// prepare-integration binary.
func NewPrepareIntegrationCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	c := NewPrepareCmd(g)
	c.Use = "prepare-integration <name>"
	standalone(c, g)
	return c
}

func standalone(c *cobra.Command, g *cmdutil.GlobalConfig) {
	c.Version = version.Get().Version
	c.SilenceUsage = true
	c.SilenceErrors = true
	bindGlobals(c, g)
}

// bindGlobals registers the global flags on c and resolves configuration
// before any command runs.
func bindGlobals(c *cobra.Command, g *cmdutil.GlobalConfig) {
	flags := &cmdutil.GlobalFlags{}
	flags.AddTo(c)
	c.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return initializeGlobals(cmd, g, flags)
	}
}

// initializeGlobals sets up logging and resolves configuration.
func initializeGlobals(c *cobra.Command, g *cmdutil.GlobalConfig, flags *cmdutil.GlobalFlags) error {
	g.Verbose = flags.Verbose

	// Resolution logs at debug level, so the level is set before resolving.
	output.SetupLogging(output.LogConfig{Verbose: flags.Verbose, Writer: c.ErrOrStderr()})

	resolved, err := config.Resolve(config.Options{
		ProjectDirFlag: flags.ProjectDir,
		ConfigFlag:     flags.ConfigPath,
		TimestampsFlag: flags.TimestampsFlag(c),
	})
	if err != nil {
		return cmdutil.Fail(err)
	}
	g.Resolved = resolved

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.Verbose,
		Timestamps: output.BoolPtr(resolved.Timestamps),
		Writer:     c.ErrOrStderr(),
	})

	info := version.Get()
	output.Debug("mfe started",
		"version", info.Version,
		"project", resolved.ProjectDir,
		"config", resolved.ConfigPath,
		"configFound", resolved.ConfigFound,
		"dotenv", resolved.DotEnvLoaded,
	)
	if flags.Verbose {
		config.LogResolvedValues(resolved.Values)
	}

	return nil
}
