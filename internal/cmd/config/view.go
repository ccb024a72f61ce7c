package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/growth-blocks/mfe/internal/cmdutil"
	"github.com/growth-blocks/mfe/internal/output"
)

// NewConfigViewCmd creates the config view command.
func NewConfigViewCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the resolved configuration",
		Long: `Show every resolved configuration value and where it came from:
flag, env, config or default.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runView(c, g)
		},
	}
}

func runView(c *cobra.Command, g *cmdutil.GlobalConfig) error {
	if g.Resolved == nil {
		return cmdutil.Fail(fmt.Errorf("configuration not resolved"))
	}

	t := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, v := range g.Resolved.Values {
		t.Row(v.Key, v.Value, string(v.Source))
	}
	peers := g.Config().PeerDependencies
	for _, name := range slices.Sorted(maps.Keys(peers)) {
		t.Row("peerDependencies."+name, peers[name], "-")
	}

	fmt.Fprintln(c.OutOrStdout(), t.String())
	return nil
}
