package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all todo configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig holds task file settings
type StorageConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StoragePath returns the task file path resolved against workDir.
func (c *Config) StoragePath(workDir string) string {
	return ResolvePath(workDir, c.Storage.Path)
}

// LoadConfigWithFile loads configuration from a specific file if provided,
// otherwise falls back to LoadConfig with the working directory.
func LoadConfigWithFile(workDir, configFile string) (*Config, error) {
	if configFile != "" {
		return LoadConfigFromPath(configFile)
	}
	return LoadConfig(workDir)
}

// LoadConfig loads configuration from the global config file and then
// todo.yaml in the given directory, the latter taking precedence.
// If neither exists, defaults are returned. Environment variables named
// after EnvPrefix (e.g. TODO_STORAGE_PATH) override both.
func LoadConfig(dir string) (*Config, error) {
	v := newViper()

	if globalPath, err := GlobalConfigPath(); err == nil {
		if err := mergeIfExists(v, globalPath); err != nil {
			return nil, err
		}
	}

	if err := mergeIfExists(v, filepath.Join(dir, ConfigName+".yaml")); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

// LoadConfigFromPath loads configuration from a specific file path.
// A missing file yields defaults.
func LoadConfigFromPath(configPath string) (*Config, error) {
	v := newViper()

	if err := mergeIfExists(v, configPath); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func mergeIfExists(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	v.SetConfigFile(path)
	return v.MergeInConfig()
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) {
	// Storage defaults
	v.SetDefault("storage.path", DefaultStoragePath)
	v.SetDefault("storage.format", DefaultStorageFormat)

	// Log defaults
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}
