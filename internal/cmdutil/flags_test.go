package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalFlags_AddTo(t *testing.T) {
	var gf GlobalFlags
	cmd := &cobra.Command{Use: "test"}
	gf.AddTo(cmd)

	for _, name := range []string{"project-dir", "config", "verbose", "timestamps"} {
		require.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)
	assert.Equal(t, "false", cmd.PersistentFlags().Lookup("timestamps").DefValue)
}

func TestGlobalFlags_TimestampsFlag(t *testing.T) {
	var gf GlobalFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	gf.AddTo(cmd)

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Nil(t, gf.TimestampsFlag(cmd), "unset flag resolves to nil")

	cmd.SetArgs([]string{"--timestamps=true"})
	require.NoError(t, cmd.Execute())
	got := gf.TimestampsFlag(cmd)
	require.NotNil(t, got)
	assert.True(t, *got)
}

func TestCreateFlags_AddTo(t *testing.T) {
	var cf CreateFlags
	cmd := &cobra.Command{Use: "test"}
	cf.AddTo(cmd)

	platform := cmd.Flags().Lookup("platform")
	require.NotNil(t, platform)
	assert.Equal(t, "p", platform.Shorthand)
	assert.Contains(t, platform.Usage, "desktop, mobile, common")

	require.NotNil(t, cmd.Flags().Lookup("plain"))
	require.NotNil(t, cmd.Flags().Lookup("strict"))
}

func TestCreateFlags_PlatformAndPlainExclusive(t *testing.T) {
	var cf CreateFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cf.AddTo(cmd)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.SetArgs([]string{"--platform", "desktop", "--plain"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform")
}

func TestPrepareFlags_AddTo(t *testing.T) {
	var pf PrepareFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	pf.AddTo(cmd)

	exclude := cmd.Flags().Lookup("exclude")
	require.NotNil(t, exclude)
	assert.Equal(t, "stringArray", exclude.Value.Type())

	cmd.SetArgs([]string{"--diff", "-x", "node_modules/**", "--exclude", "**/*.log"})
	require.NoError(t, cmd.Execute())
	assert.True(t, pf.Diff)
	assert.Equal(t, []string{"node_modules/**", "**/*.log"}, pf.Exclude)
	assert.False(t, pf.Strict)
}
