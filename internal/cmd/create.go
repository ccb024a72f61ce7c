package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/growth-blocks/mfe/internal/cmdutil"
	"github.com/growth-blocks/mfe/internal/microfrontend"
	"github.com/growth-blocks/mfe/internal/output"
	"github.com/growth-blocks/mfe/internal/pipeline"
	"github.com/growth-blocks/mfe/internal/report"
)

// NewCreateCmd creates the create command.
func NewCreateCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	var flags cmdutil.CreateFlags

	c := &cobra.Command{
		Use:   "create <name> [description] [author]",
		Short: "Create a microfrontend from the template",
		Long: `Create a microfrontend from the project template.

The name is prefixed with the platform (desktop, mobile or independent for
common). The platform is asked for interactively unless --platform or
--plain is given. Files are written under the microfrontends directory;
the command fails if the target directory already exists.

Examples:
  # Ask for the platform
  mfe create billing-form

  # Create desktop-billing-form without prompting
  mfe create billing-form "Billing form" "Jane Doe" --platform desktop

  # Create billing-form without a platform prefix
  mfe create billing-form --plain`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, g, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runCreate(c *cobra.Command, args []string, g *cmdutil.GlobalConfig, flags *cmdutil.CreateFlags) error {
	layout, err := cmdutil.Layout(g)
	if err != nil {
		return cmdutil.Fail(err)
	}

	gen, err := microfrontend.Resolve(c.Context(), args, microfrontend.ResolveOptions{
		Provider: g.ChoiceProvider(),
		Platform: flags.Platform,
		Plain:    flags.Plain,
		Category: g.Config().Category,
		Usage:    c.UseLine(),
	})
	if err != nil {
		return cmdutil.Fail(err)
	}

	res, err := pipeline.Create(c.Context(), pipeline.CreateOptions{
		Config: gen,
		Layout: layout,
		Strict: flags.Strict,
	})
	if err != nil {
		return cmdutil.Fail(err)
	}

	target := layout.Rel(res.TargetDir)
	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Created microfrontend %s", output.StyleNoun.Render(res.Name))))
	fmt.Fprintln(out)
	cmdutil.WriteFileTree(out, target, res.Files, output.StatusCreated)
	cmdutil.WriteNextSteps(out, report.CreateNextSteps(target))

	return nil
}
