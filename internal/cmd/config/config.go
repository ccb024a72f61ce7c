// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/growth-blocks/mfe/internal/cmdutil"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *cmdutil.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the mfe CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(g))
	c.AddCommand(NewConfigViewCmd(g))
	c.AddCommand(NewConfigVetCmd(g))

	return c
}
