package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/growth-blocks/mfe/internal/cmdutil"
	"github.com/growth-blocks/mfe/internal/output"
	"github.com/growth-blocks/mfe/internal/stories"
)

// NewListCmd creates the list command.
func NewListCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List microfrontends and their stories",
		Long: `List the microfrontends under the microfrontends directory.

For each one the table shows the platform encoded in its name, the package
name from package.json, the number of Storybook stories matching
**/*.stories.{js,jsx,ts,tsx}, and whether the main component file exists.
The template directory is not listed.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runList(c, g)
		},
	}
}

func runList(c *cobra.Command, g *cmdutil.GlobalConfig) error {
	layout, err := cmdutil.Layout(g)
	if err != nil {
		return cmdutil.Fail(err)
	}

	root := filepath.Join(layout.ProjectDir, filepath.FromSlash(layout.MicrofrontendsDir))
	mfs, err := stories.Discover(root, filepath.Base(filepath.FromSlash(layout.TemplateDir)))
	if err != nil {
		return cmdutil.Fail(err)
	}
	if len(mfs) == 0 {
		output.Info("no microfrontends found", "dir", layout.MicrofrontendsDir)
		return nil
	}

	fmt.Fprintln(c.OutOrStdout(), output.RenderMicrofrontendTable(stories.Rows(mfs)))
	return nil
}
