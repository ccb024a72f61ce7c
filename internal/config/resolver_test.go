package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveString(t *testing.T) {
	tests := []struct {
		name         string
		flag, env    string
		cfg, def     string
		wantValue    string
		wantSource   ConfigSource
		wantShadowed []ConfigSource
	}{
		{name: "flag wins", flag: "f", env: "e", cfg: "c", def: "d", wantValue: "f", wantSource: SourceFlag,
			wantShadowed: []ConfigSource{SourceEnv, SourceConfig, SourceDefault}},
		{name: "env over config", env: "e", cfg: "c", def: "d", wantValue: "e", wantSource: SourceEnv,
			wantShadowed: []ConfigSource{SourceConfig, SourceDefault}},
		{name: "config over default", cfg: "c", def: "d", wantValue: "c", wantSource: SourceConfig,
			wantShadowed: []ConfigSource{SourceDefault}},
		{name: "default only", def: "d", wantValue: "d", wantSource: SourceDefault},
		{name: "nothing set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rv := resolveString("k", tt.flag, tt.env, tt.cfg, tt.def)
			assert.Equal(t, tt.wantValue, rv.Value)
			assert.Equal(t, tt.wantSource, rv.Source)
			assert.Len(t, rv.Shadowed, len(tt.wantShadowed))
			for _, s := range tt.wantShadowed {
				assert.Contains(t, rv.Shadowed, s)
			}
		})
	}
}

func TestResolveProjectDir(t *testing.T) {
	t.Run("flag precedence", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(EnvProjectDir, "/env/project")

		rv, err := ResolveProjectDir(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, rv.Value)
		assert.Equal(t, SourceFlag, rv.Source)
		assert.Equal(t, "/env/project", rv.Shadowed[SourceEnv])
	})

	t.Run("env precedence", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(EnvProjectDir, dir)

		rv, err := ResolveProjectDir("")
		require.NoError(t, err)
		assert.Equal(t, dir, rv.Value)
		assert.Equal(t, SourceEnv, rv.Source)
	})

	t.Run("relative paths become absolute", func(t *testing.T) {
		t.Setenv(EnvProjectDir, "")
		rv, err := ResolveProjectDir("some/project")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(rv.Value))
	})
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag precedence", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")
		rv, err := ResolveConfigPath("/flag/config.yaml", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", rv.Value)
		assert.Equal(t, SourceFlag, rv.Source)
		assert.Equal(t, "/env/config.yaml", rv.Shadowed[SourceEnv])
	})

	t.Run("project file over home default", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		project := t.TempDir()
		writeFile(t, filepath.Join(project, ProjectConfigName), "category: x\n")

		rv, err := ResolveConfigPath("", project)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(project, ProjectConfigName), rv.Value)
		assert.Equal(t, SourceConfig, rv.Source)
	})

	t.Run("home default", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		rv, err := ResolveConfigPath("", t.TempDir())
		require.NoError(t, err)

		paths, err := DefaultPaths()
		require.NoError(t, err)
		assert.Equal(t, paths.ConfigFile, rv.Value)
		assert.Equal(t, SourceDefault, rv.Source)
	})
}

func TestResolveTimestamps(t *testing.T) {
	yes, no := true, false

	t.Run("default off", func(t *testing.T) {
		t.Setenv(EnvTimestamps, "")
		v, rv := ResolveTimestamps(nil, DefaultConfig())
		assert.False(t, v)
		assert.Equal(t, SourceDefault, rv.Source)
	})

	t.Run("config on", func(t *testing.T) {
		t.Setenv(EnvTimestamps, "")
		cfg := DefaultConfig()
		cfg.Log.Timestamps = &yes
		v, rv := ResolveTimestamps(nil, cfg)
		assert.True(t, v)
		assert.Equal(t, SourceConfig, rv.Source)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv(EnvTimestamps, "true")
		v, rv := ResolveTimestamps(&no, nil)
		assert.False(t, v)
		assert.Equal(t, SourceFlag, rv.Source)
		assert.Equal(t, "true", rv.Shadowed[SourceEnv])
	})

	t.Run("invalid env falls back to off", func(t *testing.T) {
		t.Setenv(EnvTimestamps, "sometimes")
		v, _ := ResolveTimestamps(nil, nil)
		assert.False(t, v)
	})
}

func TestResolve(t *testing.T) {
	project := t.TempDir()
	t.Setenv(EnvProjectDir, "")
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvTimestamps, "")
	t.Setenv("MFE_CATEGORY", "")
	require.NoError(t, os.Unsetenv("MFE_CATEGORY"))
	writeFile(t, filepath.Join(project, ProjectConfigName), "integrationDir: out\n")
	writeFile(t, filepath.Join(project, ".env"), "MFE_CATEGORY=from-dotenv\n")

	res, err := Resolve(Options{ProjectDirFlag: project})
	require.NoError(t, err)

	assert.Equal(t, project, res.ProjectDir)
	assert.True(t, res.ConfigFound)
	assert.True(t, res.DotEnvLoaded)
	assert.Equal(t, "out", res.Config.IntegrationDir)
	assert.Equal(t, "from-dotenv", res.Config.Category)
	assert.False(t, res.Timestamps)
	assert.NotEmpty(t, res.Values)
}
