package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/growth-blocks/mfe/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records a resolved configuration value and its origin.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolveString applies flag > env > config > default precedence.
// Empty strings count as unset.
func resolveString(key, flagValue, envValue, configValue, defaultValue string) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return rv
}

// Options holds the flag values that take part in resolution.
type Options struct {
	// ProjectDirFlag is the --project-dir flag value (empty if not set).
	ProjectDirFlag string
	// ConfigFlag is the --config flag value (empty if not set).
	ConfigFlag string
	// TimestampsFlag is the --timestamps flag value (nil if not set).
	TimestampsFlag *bool
}

// Resolved is the fully-resolved configuration for one invocation.
type Resolved struct {
	// ProjectDir is the absolute project root.
	ProjectDir string
	// ConfigPath is the config file consulted (it may not exist).
	ConfigPath string
	// ConfigFound reports whether ConfigPath exists.
	ConfigFound bool
	// DotEnvLoaded reports whether <project>/.env was loaded.
	DotEnvLoaded bool
	// Config holds the merged values.
	Config *Config
	// Timestamps is the resolved log timestamp setting.
	Timestamps bool
	// Values records every value's origin for debug logging.
	Values []ResolvedValue
}

// ResolveProjectDir resolves the project root using precedence:
// (1) --project-dir flag, (2) MFE_PROJECT_DIR env, (3) working directory.
func ResolveProjectDir(flagValue string) (ResolvedValue, error) {
	wd, err := os.Getwd()
	if err != nil {
		return ResolvedValue{}, fmt.Errorf("getting working directory: %w", err)
	}

	rv := resolveString("projectDir", flagValue, os.Getenv(EnvProjectDir), "", wd)
	expanded, err := ExpandPath(rv.Value)
	if err != nil {
		return rv, err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return rv, fmt.Errorf("resolving project dir: %w", err)
	}
	rv.Value = abs
	return rv, nil
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) MFE_CONFIG env, (3) <project>/.mfe.yaml when it
// exists, (4) ~/.mfe/config.yaml.
func ResolveConfigPath(flagValue, projectDir string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	projectFile := ProjectConfigFile(projectDir)
	found, err := FileExists(projectFile)
	if err != nil {
		return ResolvedValue{}, err
	}
	configValue := ""
	if found {
		configValue = projectFile
	}

	return resolveString("config", flagValue, os.Getenv(EnvConfig), configValue, paths.ConfigFile), nil
}

// ResolveTimestamps resolves log timestamps using precedence:
// (1) --timestamps flag, (2) MFE_LOG_TIMESTAMPS env, (3) log.timestamps, (4) false.
func ResolveTimestamps(flagValue *bool, cfg *Config) (bool, ResolvedValue) {
	str := func(b *bool) string {
		if b == nil {
			return ""
		}
		return strconv.FormatBool(*b)
	}

	var fromConfig *bool
	if cfg != nil {
		fromConfig = cfg.Log.Timestamps
	}

	rv := resolveString("log.timestamps", str(flagValue), os.Getenv(EnvTimestamps), str(fromConfig), "false")
	v, err := strconv.ParseBool(rv.Value)
	if err != nil {
		output.Warn("ignoring invalid timestamps setting", "value", rv.Value, "source", rv.Source)
		return false, rv
	}
	return v, rv
}

// Resolve loads the project .env, locates and loads the config file, and
// resolves every value with its source.
func Resolve(opts Options) (*Resolved, error) {
	projectDir, err := ResolveProjectDir(opts.ProjectDirFlag)
	if err != nil {
		return nil, err
	}

	dotEnv, err := LoadDotEnv(projectDir.Value)
	if err != nil {
		return nil, err
	}

	configPath, err := ResolveConfigPath(opts.ConfigFlag, projectDir.Value)
	if err != nil {
		return nil, err
	}
	found, err := FileExists(configPath.Value)
	if err != nil {
		return nil, err
	}

	loader := NewLoader()
	cfg, err := loader.Load(configPath.Value)
	if err != nil {
		return nil, err
	}

	timestamps, tsValue := ResolveTimestamps(opts.TimestampsFlag, cfg)

	values := []ResolvedValue{projectDir, configPath}
	values = append(values, loader.Values()...)
	values = append(values, tsValue)

	return &Resolved{
		ProjectDir:   projectDir.Value,
		ConfigPath:   configPath.Value,
		ConfigFound:  found,
		DotEnvLoaded: dotEnv,
		Config:       cfg,
		Timestamps:   timestamps,
		Values:       values,
	}, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
