package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/growth-blocks/mfe/internal/cmdutil"
	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/output"
	"github.com/growth-blocks/mfe/internal/pipeline"
	"github.com/growth-blocks/mfe/internal/report"
)

// NewPrepareCmd creates the prepare command.
func NewPrepareCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	var flags cmdutil.PrepareFlags

	c := &cobra.Command{
		Use:   "prepare <name>",
		Short: "Prepare a microfrontend for integration",
		Long: `Prepare a microfrontend for integration into a host project.

The microfrontend directory is copied into the integration directory with a
rewritten package.json (scoped name, stub version, peer dependencies instead
of dependencies) and an INTEGRATION_CHECKLIST.md. An existing output
directory is overwritten.

Examples:
  # Prepare desktop-billing-form
  mfe prepare desktop-billing-form

  # Show the manifest changes and leave node_modules out
  mfe prepare desktop-billing-form --diff --exclude 'node_modules/**'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPrepare(c, args, g, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runPrepare(c *cobra.Command, args []string, g *cmdutil.GlobalConfig, flags *cmdutil.PrepareFlags) error {
	if len(args) == 0 || args[0] == "" {
		return cmdutil.Fail(mfeerrors.NewUsageError("microfrontend name is required", c.UseLine()))
	}

	layout, err := cmdutil.Layout(g)
	if err != nil {
		return cmdutil.Fail(err)
	}

	res, err := pipeline.Prepare(c.Context(), pipeline.PrepareOptions{
		Name:     args[0],
		Layout:   layout,
		Settings: cmdutil.Settings(g.Config()),
		Exclude:  flags.Exclude,
		Diff:     flags.Diff,
		UseColor: output.IsTTY(),
		Strict:   flags.Strict,
	})
	if err != nil {
		return cmdutil.Fail(err)
	}

	outDir := layout.Rel(res.OutputDir)
	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Prepared %s for integration", output.StyleNoun.Render(res.Name))))
	fmt.Fprintln(out)
	cmdutil.WriteFileTree(out, outDir, res.Files, output.StatusCopied)

	if flags.Diff {
		fmt.Fprintln(out)
		if res.Diff == "" {
			fmt.Fprintln(out, output.StyleDim.Render("package.json unchanged"))
		} else {
			fmt.Fprintln(out, res.Diff)
		}
	}

	cmdutil.WriteNextSteps(out, report.PrepareNextSteps(outDir))

	return nil
}
