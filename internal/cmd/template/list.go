package template

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/growth-blocks/mfe/internal/cmdutil"
	"github.com/growth-blocks/mfe/internal/output"
	"github.com/growth-blocks/mfe/internal/templates"
)

// NewTemplateListCmd creates the template list command.
func NewTemplateListCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the files of the template in use",
		Long: `List the files of the template used by create: the project template
directory when it exists, the built-in template otherwise.`,
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

	src, location, err := templates.Source(layout.TemplateRoot())
	if err != nil {
		return cmdutil.Fail(err)
	}
	files, err := templates.Files(src)
	if err != nil {
		return cmdutil.Fail(fmt.Errorf("listing template files: %w", err))
	}

	if location != templates.EmbeddedLocation {
		location = layout.Rel(location)
	}
	output.Info("template", "location", location, "files", len(files))

	out := c.OutOrStdout()
	for _, f := range files {
		fmt.Fprintln(out, f)
	}
	return nil
}
