package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/growth-blocks/mfe/internal/cmdutil"
	"github.com/growth-blocks/mfe/internal/config"
	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/output"
)

const configHeader = "# mfe configuration\n# Values here are overridden by MFE_* environment variables and flags.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	var force, project bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create a configuration file with default values.

The file is created at the resolved config path: --config, MFE_CONFIG,
<project>/.mfe.yaml when it exists, or ~/.mfe/config.yaml.
Use --project to create <project>/.mfe.yaml instead.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, g, force, project)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	c.Flags().BoolVar(&project, "project", false, "Create the config file in the project directory")

	return c
}

func runInit(c *cobra.Command, g *cmdutil.GlobalConfig, force, project bool) error {
	path := ""
	if g.Resolved != nil {
		path = g.Resolved.ConfigPath
	}
	if project || path == "" {
		path = config.ProjectConfigFile(g.ProjectDir())
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return cmdutil.Fail(fmt.Errorf("checking config file: %w", err))
	}
	if exists && !force {
		return cmdutil.Fail(mfeerrors.NewExistsError(
			"config file already exists", path, "use --force to overwrite"))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cmdutil.Fail(fmt.Errorf("creating config directory: %w", err))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return cmdutil.Fail(fmt.Errorf("marshaling config: %w", err))
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return cmdutil.Fail(fmt.Errorf("writing config file: %w", err))
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+path))
	return nil
}
