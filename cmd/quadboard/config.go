// Config loading for the quadboard CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/quadboard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeySeedItems     = "seed_items"
	cfgKeyJournalDSN    = "journal_dsn"
	cfgKeyLogLevel      = "log_level"
	cfgKeyStrict        = "strict"
	cfgKeySummaryFormat = "summary_format"
)

// configHeader is prepended to the generated config.yaml.
const configHeader = `# quadboard configuration
#
# seed_items:      items available in the pool at start ({id, content})
# journal_dsn:     SQLite DSN for the session journal (":memory:" or a file path)
# log_level:       debug, info, warn, or error
# strict:          stop at the first rejected intent instead of skipping it
# summary_format:  text or json

`

// loadConfig reads config.yaml from configDir into v and returns its path.
// It creates the directory and a default config.yaml on first run. A
// missing config.yaml is not an error.
func loadConfig(v *viper.Viper, configDir string) (string, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return "", fmt.Errorf("ensure config dir: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(path); err != nil {
		return "", fmt.Errorf("ensure default config: %w", err)
	}

	defaults := types.DefaultConfig()
	v.SetDefault(cfgKeyJournalDSN, "")
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetDefault(cfgKeyStrict, defaults.Strict)
	v.SetDefault(cfgKeySummaryFormat, defaults.SummaryFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return path, nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return path, nil
}

// decodeConfig builds a types.Config from v. Seed items fall back to the
// default list when the key is absent.
func decodeConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.DefaultConfig()

	if v.IsSet(cfgKeySeedItems) {
		var items []types.Item
		if err := v.UnmarshalKey(cfgKeySeedItems, &items); err != nil {
			return types.Config{}, fmt.Errorf("decode %s: %w", cfgKeySeedItems, err)
		}
		cfg.SeedItems = items
	}
	cfg.JournalDSN = v.GetString(cfgKeyJournalDSN)
	cfg.LogLevel = v.GetString(cfgKeyLogLevel)
	cfg.Strict = v.GetBool(cfgKeyStrict)
	cfg.SummaryFormat = v.GetString(cfgKeySummaryFormat)
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	// journal_dsn is left blank so QUADBOARD_JOURNAL can still apply.
	cfg := types.DefaultConfig()
	cfg.JournalDSN = ""

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}
