// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/growth-blocks/mfe/internal/config"
)

// EnvKeys lists every environment variable the CLI reads.
var EnvKeys = []string{
	config.EnvProjectDir,
	config.EnvConfig,
	config.EnvTimestamps,
	"MFE_MICROFRONTENDS_DIR",
	"MFE_TEMPLATE_DIR",
	"MFE_INTEGRATION_DIR",
	"MFE_CATEGORY",
	"MFE_PACKAGE_SCOPE",
	"MFE_REPOSITORY_URL",
	"MFE_STUB_VERSION",
}

// IsolateEnv points HOME at an empty directory and unsets every MFE_*
// variable for the duration of the test. Variables are unset rather than
// emptied so a project .env can still provide them.
func IsolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range EnvKeys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unsetting %s: %v", key, err)
		}
	}
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// MicrofrontendDir returns the default location of a microfrontend in project.
func MicrofrontendDir(project, name string) string {
	return filepath.Join(project, filepath.FromSlash(config.DefaultMicrofrontendsDir), name)
}

// SeedMicrofrontend writes a minimal microfrontend with the given manifest
// into project and returns its directory.
func SeedMicrofrontend(t *testing.T, project, name, manifest string) string {
	t.Helper()
	dir := MicrofrontendDir(project, name)
	WriteFile(t, dir, "package.json", manifest)
	WriteFile(t, dir, "src/index.ts", "export {};\n")
	return dir
}
