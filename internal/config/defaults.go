package config

const (
	// DefaultTestsDir is the directory scanned for external test scripts.
	DefaultTestsDir = "test/externalTests"
	// DefaultScriptExtension marks a file as a dispatchable test script.
	DefaultScriptExtension = "sh"
	// DefaultSharedScriptName is the shared-utility script excluded from the registry.
	DefaultSharedScriptName = "common"
	// DefaultFoundryConfigFile is the Foundry project configuration file.
	DefaultFoundryConfigFile = "foundry.toml"
	// DefaultEVMVersion is the EVM version presets are resolved against.
	DefaultEVMVersion = "shanghai"
	// DefaultOutputJSONFile is the default results file name.
	DefaultOutputJSONFile = "exttest-results.json"
	// DefaultOutputJSONDir is the default results directory.
	DefaultOutputJSONDir = "storage"
)
