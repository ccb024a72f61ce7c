package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/growth-blocks/mfe/internal/cmdutil"
	"github.com/growth-blocks/mfe/internal/output"
	"github.com/growth-blocks/mfe/internal/prompt"
	"github.com/growth-blocks/mfe/internal/testutil"
)

// isolate points HOME at an empty directory and clears MFE_* variables so
// only the test project is consulted. It returns the project directory.
func isolate(t *testing.T) string {
	t.Helper()
	testutil.IsolateEnv(t)
	t.Cleanup(func() { output.SetupLogging(output.LogConfig{}) })
	return t.TempDir()
}

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, root *cobra.Command, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// mfe runs the mfe root command against project, answering the platform
// prompt with answer.
func mfe(t *testing.T, project, answer string, args ...string) result {
	t.Helper()
	g := &cmdutil.GlobalConfig{Prompt: prompt.Static(answer)}
	return run(t, NewRootCmd(g), append(args, "--project-dir", project)...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	testutil.WriteFile(t, filepath.Dir(path), filepath.Base(path), content)
}

func mfDir(project, name string) string {
	return testutil.MicrofrontendDir(project, name)
}
