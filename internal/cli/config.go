package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/companion/internal/logging"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir         = "data_dir"
	cfgKeyLogLevel        = "log_level"
	cfgKeyLogFormat       = "log_format"
	cfgKeyMusicEnabled    = "music_enabled"
	cfgKeyBackupOnMigrate = "backup_on_migrate"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# companion configuration

# Data directory (optional; overridable by --data-dir)
# data_dir:

# Logging: debug, info, warn, error; console or json
log_level: warn
log_format: console

# Background music setting
music_enabled: true

# Copy the database before a schema upgrade
backup_on_migrate: true
`

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, logging.DefaultLevel)
	v.SetDefault(cfgKeyLogFormat, logging.DefaultEncoding)
	v.SetDefault(cfgKeyMusicEnabled, true)
	v.SetDefault(cfgKeyBackupOnMigrate, true)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates config.yaml unless it exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// saveSetting persists one key to config.yaml.
func saveSetting(v *viper.Viper, configDir, key string, value any) error {
	v.Set(key, value)
	if err := v.WriteConfigAs(filepath.Join(configDir, configFileExt)); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
