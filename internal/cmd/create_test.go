package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growth-blocks/mfe/internal/cmdutil"
	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/manifest"
	"github.com/growth-blocks/mfe/internal/placeholder"
	"github.com/growth-blocks/mfe/internal/prompt"
)

var createdFiles = []string{
	"package.json",
	"src/index.ts",
	"src/types.ts",
	"src/styles.module.css",
	"src/__stories__/index.stories.tsx",
	"src/desktop-billing-form.tsx",
}

func TestNewCreateCmd(t *testing.T) {
	c := NewCreateCmd(&cmdutil.GlobalConfig{})

	assert.Equal(t, "create <name> [description] [author]", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
	assert.NotNil(t, c.Flags().Lookup("platform"))
}

func TestCreate_Desktop(t *testing.T) {
	project := isolate(t)

	res := mfe(t, project, "desktop", "create", "billing-form")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, mfeerrors.ExitSuccess, mfeerrors.ExitCodeFromError(res.err))

	target := mfDir(project, "desktop-billing-form")
	for _, rel := range createdFiles {
		data, err := os.ReadFile(filepath.Join(target, filepath.FromSlash(rel)))
		require.NoError(t, err, rel)
		assert.Empty(t, placeholder.Scan(string(data)), rel)
	}

	assert.Contains(t, res.stdout, "Created microfrontend")
	assert.Contains(t, res.stdout, "desktop-billing-form.tsx")
	assert.Contains(t, res.stdout, "Next steps:")
	assert.Contains(t, res.stdout, "cd src/microfrontends/desktop-billing-form")
}

func TestCreate_ArgumentsAndFlags(t *testing.T) {
	project := isolate(t)

	res := mfe(t, project, "", "create", "promo", "Promo banner", "Jane", "--platform", "common")
	require.NoError(t, res.err, res.stderr)

	doc, err := manifest.Load(filepath.Join(mfDir(project, "independent-promo"), "package.json"))
	require.NoError(t, err)
	assert.Equal(t, "independent-promo", doc.String("name"))
	assert.Equal(t, "Promo banner", doc.String("description"))
	assert.FileExists(t, filepath.Join(mfDir(project, "independent-promo"), "src", "independent-promo.tsx"))
}

func TestCreate_Plain(t *testing.T) {
	project := isolate(t)

	res := mfe(t, project, "", "create", "cart", "--plain")
	require.NoError(t, res.err, res.stderr)
	assert.DirExists(t, mfDir(project, "cart"))
}

func TestCreate_ExistingTarget(t *testing.T) {
	project := isolate(t)

	require.NoError(t, mfe(t, project, "desktop", "create", "billing-form").err)
	component := filepath.Join(mfDir(project, "desktop-billing-form"), "src", "desktop-billing-form.tsx")
	writeFile(t, component, "edited")

	res := mfe(t, project, "desktop", "create", "billing-form")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, mfeerrors.ErrExists)
	assert.Equal(t, mfeerrors.ExitFailure, mfeerrors.ExitCodeFromError(res.err))
	assert.Contains(t, res.stderr, "already exists")

	data, err := os.ReadFile(component)
	require.NoError(t, err)
	assert.Equal(t, "edited", string(data))
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		args   []string
		want   error
		reason mfeerrors.Reason
	}{
		{
			name:   "missing name",
			answer: "desktop",
			args:   []string{"create"},
			want:   mfeerrors.ErrUsage,
			reason: mfeerrors.ReasonUsage,
		},
		{
			name:   "name with separator",
			answer: "desktop",
			args:   []string{"create", "a/b"},
			want:   mfeerrors.ErrUsage,
			reason: mfeerrors.ReasonUsage,
		},
		{
			name:   "invalid platform flag",
			answer: "desktop",
			args:   []string{"create", "a", "--platform", "tv"},
			want:   mfeerrors.ErrUsage,
			reason: mfeerrors.ReasonUsage,
		},
		{
			name:   "aborted prompt",
			answer: "",
			args:   []string{"create", "a"},
			want:   mfeerrors.ErrAborted,
			reason: mfeerrors.ReasonAborted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := isolate(t)

			res := mfe(t, project, tt.answer, tt.args...)
			require.Error(t, res.err)
			assert.ErrorIs(t, res.err, tt.want)

			var exitErr *mfeerrors.ExitError
			require.ErrorAs(t, res.err, &exitErr)
			assert.Equal(t, tt.reason, exitErr.Reason)
			assert.True(t, exitErr.Printed)
			assert.Equal(t, mfeerrors.ExitFailure, exitErr.Code)

			assert.NoDirExists(t, filepath.Join(project, "src"))
		})
	}
}

func TestCreate_AbortedMessage(t *testing.T) {
	project := isolate(t)

	res := mfe(t, project, "", "create", "a")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "platform selection cancelled")
	assert.Contains(t, res.stderr, "--platform")
}

func TestCreateMicrofrontendCmd(t *testing.T) {
	project := isolate(t)

	g := &cmdutil.GlobalConfig{Prompt: prompt.Static("mobile")}
	res := run(t, NewCreateMicrofrontendCmd(g), "checkout", "--project-dir", project)
	require.NoError(t, res.err, res.stderr)
	assert.DirExists(t, mfDir(project, "mobile-checkout"))
	assert.NotNil(t, g.Resolved)
	assert.Equal(t, project, g.Resolved.ProjectDir)
}

func TestCreate_ProjectConfig(t *testing.T) {
	project := isolate(t)
	writeFile(t, filepath.Join(project, ".mfe.yaml"), "microfrontendsDir: packages\ncategory: widgets\n")

	res := mfe(t, project, "desktop", "create", "a")
	require.NoError(t, res.err, res.stderr)

	data, err := os.ReadFile(filepath.Join(project, "packages", "desktop-a", "src", "__stories__", "index.stories.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "widgets/desktop-a")
}
