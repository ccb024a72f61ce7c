// Package cmdutil provides shared command utilities for the mfe commands.
// It centralizes flag groups, the global configuration handed to every
// command, pipeline wiring, and error reporting.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/growth-blocks/mfe/internal/microfrontend"
)

// GlobalFlags holds the persistent flags of every binary.
type GlobalFlags struct {
	ProjectDir string
	ConfigPath string
	Verbose    bool
	Timestamps bool
}

// AddTo registers the global flags as persistent flags of cmd.
func (f *GlobalFlags) AddTo(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.ProjectDir, "project-dir", "",
		"Project root (env: MFE_PROJECT_DIR, default: working directory)")
	cmd.PersistentFlags().StringVar(&f.ConfigPath, "config", "",
		"Path to config file (env: MFE_CONFIG)")
	cmd.PersistentFlags().BoolVarP(&f.Verbose, "verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().BoolVar(&f.Timestamps, "timestamps", false,
		"Show timestamps in log output (env: MFE_LOG_TIMESTAMPS)")
}

// TimestampsFlag returns the --timestamps value when it was set explicitly.
func (f *GlobalFlags) TimestampsFlag(cmd *cobra.Command) *bool {
	if flag := cmd.Flags().Lookup("timestamps"); flag != nil && flag.Changed {
		v := f.Timestamps
		return &v
	}
	return nil
}

// CreateFlags holds the flags of the create commands.
type CreateFlags struct {
	Platform string
	Plain    bool
	Strict   bool
}

// AddTo registers the create flags on cmd.
func (f *CreateFlags) AddTo(cmd *cobra.Command) {
	names := make([]string, 0, len(microfrontend.Platforms()))
	for _, p := range microfrontend.Platforms() {
		names = append(names, string(p))
	}
	cmd.Flags().StringVarP(&f.Platform, "platform", "p", "",
		fmt.Sprintf("Platform (%s); prompts when omitted", strings.Join(names, ", ")))
	cmd.Flags().BoolVar(&f.Plain, "plain", false,
		"Skip platform selection and use the name unprefixed")
	cmd.Flags().BoolVar(&f.Strict, "strict", false,
		"Fail on unresolved placeholders instead of warning")
	cmd.MarkFlagsMutuallyExclusive("platform", "plain")
}

// PrepareFlags holds the flags of the prepare commands.
type PrepareFlags struct {
	Diff    bool
	Exclude []string
	Strict  bool
}

// AddTo registers the prepare flags on cmd.
func (f *PrepareFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Diff, "diff", false,
		"Print the manifest changes")
	cmd.Flags().StringArrayVarP(&f.Exclude, "exclude", "x", nil,
		"Glob of source paths to leave out of the copy (can be repeated)")
	cmd.Flags().BoolVar(&f.Strict, "strict", false,
		"Fail when the prepared manifest has schema issues")
}
