package config

import (
	"os"
	"path/filepath"
)

// Environment variables read directly (not through viper).
const (
	EnvProjectDir = "MFE_PROJECT_DIR"
	EnvConfig     = "MFE_CONFIG"
	EnvTimestamps = "MFE_LOG_TIMESTAMPS"
)

// ProjectConfigName is the per-project config file name.
const ProjectConfigName = ".mfe.yaml"

// DotEnvName is the project env file loaded before env lookup.
const DotEnvName = ".env"

// Paths contains standard filesystem paths for mfe.
type Paths struct {
	// HomeDir is the mfe home directory (~/.mfe).
	HomeDir string

	// ConfigFile is the path to the user config file (~/.mfe/config.yaml).
	ConfigFile string
}

// DefaultPaths returns the default paths for mfe.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	mfeHome := filepath.Join(homeDir, ".mfe")

	return &Paths{
		HomeDir:    mfeHome,
		ConfigFile: filepath.Join(mfeHome, "config.yaml"),
	}, nil
}

// ProjectConfigFile returns the per-project config path for projectDir.
func ProjectConfigFile(projectDir string) string {
	return filepath.Join(projectDir, ProjectConfigName)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}

// FileExists reports whether a regular file or directory exists at path.
func FileExists(path string) (bool, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
