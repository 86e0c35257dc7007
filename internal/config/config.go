// Package config handles hwyreduce configuration via YAML files and
// environment variables.
//
// Configuration Precedence (highest to lowest):
//  1. Command-line flags (--type, --no-simd, --verbose)
//  2. Environment variables (HWYREDUCE_*)
//  3. Config file (hwyreduce.yaml)
//  4. Built-in defaults
//
// Example Usage:
//
//	cfg, err := config.LoadFromFile(config.FindConfigFile())
//	if err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
//
// Environment Variables:
//   - HWYREDUCE_TYPE="f64"
//   - HWYREDUCE_NO_SIMD=true
//   - HWYREDUCE_VERBOSE=true
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name FindConfigFile looks for.
const DefaultConfigFile = "hwyreduce.yaml"

// ErrUnknownType is returned for an element type name outside ElementTypes.
var ErrUnknownType = errors.New("unknown element type")

// ElementTypes lists the accepted element type names.
var ElementTypes = []string{
	"i8", "i16", "i32", "i64", "int",
	"u8", "u16", "u32", "u64", "uint",
	"f32", "f64",
}

// Config holds the hwyreduce settings.
type Config struct {
	// Type is the element type the input is parsed as.
	Type string `yaml:"type"`

	// NoSIMD forces the scalar reductions.
	NoSIMD bool `yaml:"no_simd"`

	// Verbose logs the dispatch path and input size.
	Verbose bool `yaml:"verbose"`
}

// LoadDefaults returns the built-in defaults.
func LoadDefaults() *Config {
	return &Config{
		Type: "f64",
	}
}

// LoadFromEnv returns the defaults with environment variables applied.
func LoadFromEnv() *Config {
	cfg := LoadDefaults()
	applyEnvVars(cfg)
	return cfg
}

// LoadFromFile loads defaults, then the YAML file at configPath, then the
// environment. A missing file is not an error. An empty path skips the file.
//
// The result is not validated, so higher-precedence settings such as flags
// can still replace a bad value; call Validate once they are applied.
func LoadFromFile(configPath string) (*Config, error) {
	cfg := LoadDefaults()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			var fileCfg Config
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
			if fileCfg.Type != "" {
				cfg.Type = fileCfg.Type
			}
			cfg.NoSIMD = cfg.NoSIMD || fileCfg.NoSIMD
			cfg.Verbose = cfg.Verbose || fileCfg.Verbose
		case os.IsNotExist(err):
			// Defaults and environment only
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	applyEnvVars(cfg)
	return cfg, nil
}

// FindConfigFile returns the first existing config file among the current
// directory and the user config directory, or "" if there is none.
func FindConfigFile() string {
	candidates := []string{DefaultConfigFile}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "hwyreduce", DefaultConfigFile))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	c.Type = strings.ToLower(strings.TrimSpace(c.Type))
	if !slices.Contains(ElementTypes, c.Type) {
		return fmt.Errorf("%w %q (want one of %s)", ErrUnknownType, c.Type, strings.Join(ElementTypes, ", "))
	}
	return nil
}

func applyEnvVars(cfg *Config) {
	cfg.Type = getEnv("HWYREDUCE_TYPE", cfg.Type)
	cfg.NoSIMD = getEnvBool("HWYREDUCE_NO_SIMD", cfg.NoSIMD)
	cfg.Verbose = getEnvBool("HWYREDUCE_VERBOSE", cfg.Verbose)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultVal
}
