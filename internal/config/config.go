// Package config implements application configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default config values.
const (
	DefaultConfigFile                     = "config/config.yml"
	DefaultServerPort                     = ":8080"
	DefaultServerReadTimeoutSeconds       = 30
	DefaultServerWriteTimeoutSeconds      = 30
	DefaultServerIdleTimeoutSeconds       = 60
	DefaultServerReadHeaderTimeoutSeconds = 30
	DefaultLoggerLevel                    = LogLevelInfo
	DefaultLoggerFormat                   = LogFormatJSON
)

// defaultConfig returns a Config populated with the default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                     DefaultServerPort,
			ReadTimeoutSeconds:       DefaultServerReadTimeoutSeconds,
			WriteTimeoutSeconds:      DefaultServerWriteTimeoutSeconds,
			IdleTimeoutSeconds:       DefaultServerIdleTimeoutSeconds,
			ReadHeaderTimeoutSeconds: DefaultServerReadHeaderTimeoutSeconds,
		},
		Logger: LoggerConfig{
			Level:  DefaultLoggerLevel,
			Format: DefaultLoggerFormat,
		},
		Validator: ValidatorConfig{
			LooseParsing: false,
		},
	}
}

// LoadConfig loads the configuration from a YAML file, falling back to the
// defaults for any section the file omits. A missing file at the default
// location is not an error.
func LoadConfig(filePath string) (*Config, error) {
	cfg := defaultConfig()

	loadPath := filePath
	if loadPath == "" {
		loadPath = DefaultConfigFile
	}

	fileBytes, err := os.ReadFile(loadPath)
	if err != nil {
		if os.IsNotExist(err) && filePath == "" {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", loadPath, err)
	}

	type partialConfig struct {
		Server    *ServerConfig    `yaml:"server"`
		Logger    *LoggerConfig    `yaml:"logger"`
		Validator *ValidatorConfig `yaml:"validator"`
	}
	var pCfg partialConfig

	if err := yaml.Unmarshal(fileBytes, &pCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", loadPath, err)
	}

	if pCfg.Server != nil {
		if pCfg.Server.Port != "" {
			cfg.Server.Port = pCfg.Server.Port
		}
		if pCfg.Server.ReadTimeoutSeconds > 0 {
			cfg.Server.ReadTimeoutSeconds = pCfg.Server.ReadTimeoutSeconds
		}
		if pCfg.Server.WriteTimeoutSeconds > 0 {
			cfg.Server.WriteTimeoutSeconds = pCfg.Server.WriteTimeoutSeconds
		}
		if pCfg.Server.IdleTimeoutSeconds > 0 {
			cfg.Server.IdleTimeoutSeconds = pCfg.Server.IdleTimeoutSeconds
		}
		if pCfg.Server.ReadHeaderTimeoutSeconds > 0 {
			cfg.Server.ReadHeaderTimeoutSeconds = pCfg.Server.ReadHeaderTimeoutSeconds
		}
	}
	if pCfg.Logger != nil {
		if pCfg.Logger.Level != "" {
			cfg.Logger.Level = pCfg.Logger.Level
		}
		if pCfg.Logger.Format != "" {
			cfg.Logger.Format = pCfg.Logger.Format
		}
	}
	if pCfg.Validator != nil {
		cfg.Validator = *pCfg.Validator
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in '%s': %w", loadPath, err)
	}

	return cfg, nil
}
