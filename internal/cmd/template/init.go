package template

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/growth-blocks/mfe/internal/cmdutil"
	"github.com/growth-blocks/mfe/internal/output"
	"github.com/growth-blocks/mfe/internal/templates"
)

// NewTemplateInitCmd creates the template init command.
func NewTemplateInitCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the built-in template into the project",
		Long: `Write the built-in microfrontend template into the template directory
of the project (templateDir, default src/microfrontends/_template).

The command fails if the template directory already exists.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, g)
		},
	}
}

func runInit(c *cobra.Command, g *cmdutil.GlobalConfig) error {
	layout, err := cmdutil.Layout(g)
	if err != nil {
		return cmdutil.Fail(err)
	}

	root := layout.TemplateRoot()
	files, err := templates.Seed(root, func(rel string) {
		output.Debug("seeded template file", "path", rel)
	})
	if err != nil {
		return cmdutil.Fail(err)
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Template written to "+layout.Rel(root)))
	fmt.Fprintln(out)
	cmdutil.WriteFileTree(out, layout.Rel(root), files, output.StatusWritten)
	return nil
}
