package config

import (
	"path/filepath"
)

// Config holds all configuration for the harness.
type Config struct {
	// TestsDir is the directory containing external test scripts.
	TestsDir string `yaml:"tests_dir"`
	// ScriptExtension marks dispatchable scripts (without the dot).
	ScriptExtension string `yaml:"script_extension"`
	// SharedScriptName is the shared-utility script excluded from the registry.
	SharedScriptName string `yaml:"shared_script_name"`
	// FoundryConfigFile is the per-project Foundry configuration file name.
	FoundryConfigFile string `yaml:"foundry_config_file"`
	// EVMVersion is the EVM version presets are resolved against.
	EVMVersion string `yaml:"evm_version"`
	// OutputJSONFile is the results file name.
	OutputJSONFile string `yaml:"output_json_file"`
	// OutputJSONDir is the directory the results file is written to.
	OutputJSONDir string `yaml:"output_json_dir"`

	// Flags holds command-line overrides; never read from YAML.
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags.
type Flags struct {
	SolcBinaryType string
	SolcBinaryPath string
	SolcVersion    string
	Run            []string
	RunAll         bool
	TestDir        string
	Presets        []string
	EVMVersion     string
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		TestsDir:          DefaultTestsDir,
		ScriptExtension:   DefaultScriptExtension,
		SharedScriptName:  DefaultSharedScriptName,
		FoundryConfigFile: DefaultFoundryConfigFile,
		EVMVersion:        DefaultEVMVersion,
		OutputJSONFile:    DefaultOutputJSONFile,
		OutputJSONDir:     DefaultOutputJSONDir,
	}
}

// GetEVMVersion returns the EVM version, using the flag if provided.
func (c *Config) GetEVMVersion() string {
	if c.Flags.EVMVersion != "" {
		return c.Flags.EVMVersion
	}
	return c.EVMVersion
}

// GetOutputPath returns the absolute path of the results JSON file so run and
// failures always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
