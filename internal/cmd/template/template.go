// Package template provides the `mfe template` command group.
package template

import (
	"github.com/spf13/cobra"

	"github.com/growth-blocks/mfe/internal/cmdutil"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Template operations",
		Long:  `Commands for seeding and inspecting the microfrontend template.`,
	}

	c.AddCommand(
		NewTemplateInitCmd(g),
		NewTemplateListCmd(g),
	)

	return c
}
