package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variable prefix for mfe configuration.
const envPrefix = "MFE"

// configKey binds a config file key to its environment variable.
type configKey struct {
	key string
	env string
	def string
}

// stringKeys lists the scalar keys that can be set from the environment.
var stringKeys = []configKey{
	{"microfrontendsDir", "MFE_MICROFRONTENDS_DIR", DefaultMicrofrontendsDir},
	{"templateDir", "MFE_TEMPLATE_DIR", DefaultTemplateDir},
	{"integrationDir", "MFE_INTEGRATION_DIR", DefaultIntegrationDir},
	{"category", "MFE_CATEGORY", DefaultCategory},
	{"packageScope", "MFE_PACKAGE_SCOPE", DefaultPackageScope},
	{"repositoryURL", "MFE_REPOSITORY_URL", DefaultRepositoryURL},
	{"stubVersion", "MFE_STUB_VERSION", DefaultStubVersion},
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v    *viper.Viper
	file *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, k := range stringKeys {
		_ = v.BindEnv(k.key, k.env)
	}
	_ = v.BindEnv("log.timestamps", EnvTimestamps)

	return &Loader{v: v, file: viper.New()}
}

// Load loads configuration from the given file path. A missing file is not
// an error. Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	expanded, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	if expanded != "" {
		for _, v := range []*viper.Viper{l.v, l.file} {
			v.SetConfigFile(expanded)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
				return nil, fmt.Errorf("reading config file %s: %w", expanded, err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.WithDefaults(), nil
}

// Values reports where each scalar key was resolved from. Must be called
// after Load.
func (l *Loader) Values() []ResolvedValue {
	values := make([]ResolvedValue, 0, len(stringKeys))
	for _, k := range stringKeys {
		var fileValue string
		if l.file.IsSet(k.key) {
			fileValue = l.file.GetString(k.key)
		}
		values = append(values, resolveString(k.key, "", os.Getenv(k.env), fileValue, k.def))
	}
	return values
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// LoadDotEnv loads <projectDir>/.env into the process environment. Variables
// already set are kept. A missing file is not an error; the return value
// reports whether a file was loaded.
func LoadDotEnv(projectDir string) (bool, error) {
	path := filepath.Join(projectDir, DotEnvName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("loading %s: %w", path, err)
	}
	return true, nil
}
