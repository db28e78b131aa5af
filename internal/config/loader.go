package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a YAML configuration file on top of the defaults,
// then applies environment overrides.
func Load(filename string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// validate checks that required fields are present.
func validate(cfg *Config) error {
	if cfg.TestsDir == "" {
		return fmt.Errorf("tests_dir is required")
	}
	if cfg.FoundryConfigFile == "" {
		return fmt.Errorf("foundry_config_file is required")
	}
	return nil
}

// applyDefaults restores defaults for optional fields left empty in the file.
func applyDefaults(cfg *Config) {
	if cfg.ScriptExtension == "" {
		cfg.ScriptExtension = DefaultScriptExtension
	}
	if cfg.SharedScriptName == "" {
		cfg.SharedScriptName = DefaultSharedScriptName
	}
	if cfg.EVMVersion == "" {
		cfg.EVMVersion = DefaultEVMVersion
	}
	if cfg.OutputJSONFile == "" {
		cfg.OutputJSONFile = DefaultOutputJSONFile
	}
	if cfg.OutputJSONDir == "" {
		cfg.OutputJSONDir = DefaultOutputJSONDir
	}
}

// ApplyEnv overlays EXTTEST_* environment variables, loading a .env file
// first when one exists.
func (c *Config) ApplyEnv() {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	if v := os.Getenv("EXTTEST_TESTS_DIR"); v != "" {
		c.TestsDir = v
	}
	if v := os.Getenv("EXTTEST_EVM_VERSION"); v != "" {
		c.EVMVersion = v
	}
	if v := os.Getenv("EXTTEST_FOUNDRY_CONFIG_FILE"); v != "" {
		c.FoundryConfigFile = v
	}
	if v := os.Getenv("EXTTEST_OUTPUT_DIR"); v != "" {
		c.OutputJSONDir = v
	}
}
