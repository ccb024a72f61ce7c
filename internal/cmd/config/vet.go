package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/growth-blocks/mfe/internal/cmdutil"
	"github.com/growth-blocks/mfe/internal/config"
	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/manifest"
	"github.com/growth-blocks/mfe/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the resolved configuration file.

Checks that the directories are relative and stay inside the project, that
packageScope looks like @scope, that stubVersion is a semver version, and
that every peer dependency range is a valid semver constraint.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, g)
		},
	}
}

func runVet(c *cobra.Command, g *cmdutil.GlobalConfig) error {
	if g.Resolved == nil {
		return cmdutil.Fail(fmt.Errorf("configuration not resolved"))
	}
	path := g.Resolved.ConfigPath
	if !g.Resolved.ConfigFound {
		return cmdutil.Fail(mfeerrors.NewNotFoundError(
			"config file not found", path, "run `mfe config init` to create one"))
	}

	cfg := g.Config()
	failed := false

	var verrs config.ValidationErrors
	if err := config.Validate(cfg); err != nil {
		if !errors.As(err, &verrs) {
			return cmdutil.Fail(err)
		}
		for _, v := range verrs {
			output.Error("invalid value", "field", v.Field, "problem", v.Message)
		}
		failed = true
	}

	issues := manifest.CheckVersions(cmdutil.Settings(cfg))
	for _, issue := range issues {
		output.Error("invalid version", "field", issue.Field, "value", issue.Value, "problem", issue.Err)
	}
	if len(issues) > 0 {
		failed = true
	}

	if failed {
		return cmdutil.Fail(mfeerrors.NewValidationError(
			fmt.Sprintf("config validation failed with %d issue(s)", len(verrs)+len(issues)),
			path,
			"fix the reported fields"))
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
