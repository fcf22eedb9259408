/*
Package config manages TOML configuration for shobdo's ambient layers: the
IPC server, the suggestion-result cache, and the CLI's defaults. None of
these settings reach the core query path (AvroSuggester, BanglaSuggester,
PrefixIndex); they only shape how the ambient wrappers around it behave.

InitConfig handles automatic config file creation and loading with
fallback to defaults. LoadConfig and SaveConfig provide direct file
access for callers that manage the path themselves.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bengalinput/shobdo/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire configuration structure.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has IPC-server related options.
type ServerConfig struct {
	MaxResults   int  `toml:"max_results"`
	MinPrefix    int  `toml:"min_prefix"`
	MaxPrefix    int  `toml:"max_prefix"`
	EnableFilter bool `toml:"enable_filter"`
}

// CacheConfig controls the optional LRU suggestion-result cache in front
// of each suggester. A nonpositive size disables caching for that
// suggester.
type CacheConfig struct {
	AvroCacheSize   int `toml:"avro_cache_size"`
	BanglaCacheSize int `toml:"bangla_cache_size"`
}

// CliConfig holds the interactive shell and one-shot CLI defaults.
type CliConfig struct {
	DefaultNoFilter bool `toml:"default_no_filter"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxResults:   64,
			MinPrefix:    1,
			MaxPrefix:    60,
			EnableFilter: true,
		},
		Cache: CacheConfig{
			AvroCacheSize:   2048,
			BanglaCacheSize: 2048,
		},
		CLI: CliConfig{
			DefaultNoFilter: false,
		},
	}
}

// InitConfig loads config from file or creates default if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return nil, err
	}
	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("created default config file at %s", utils.GetAbsolutePath(configPath))
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("failed to create config file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(cfg)
}

// Update changes server config values and persists them to configPath.
func (c *Config) Update(configPath string, maxResults, minPrefix, maxPrefix *int, enableFilter *bool) error {
	server := &c.Server
	if maxResults != nil {
		server.MaxResults = *maxResults
	}
	if minPrefix != nil {
		server.MinPrefix = *minPrefix
	}
	if maxPrefix != nil {
		server.MaxPrefix = *maxPrefix
	}
	if enableFilter != nil {
		server.EnableFilter = *enableFilter
	}
	return SaveConfig(c, configPath)
}
