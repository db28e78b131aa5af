package config

import (
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.TestsDir != DefaultTestsDir {
		t.Errorf("expected TestsDir %s, got %s", DefaultTestsDir, cfg.TestsDir)
	}
	if cfg.ScriptExtension != DefaultScriptExtension {
		t.Errorf("expected ScriptExtension %s, got %s", DefaultScriptExtension, cfg.ScriptExtension)
	}
	if cfg.SharedScriptName != DefaultSharedScriptName {
		t.Errorf("expected SharedScriptName %s, got %s", DefaultSharedScriptName, cfg.SharedScriptName)
	}
	if cfg.EVMVersion != DefaultEVMVersion {
		t.Errorf("expected EVMVersion %s, got %s", DefaultEVMVersion, cfg.EVMVersion)
	}
}

func TestConfig_GetEVMVersion(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default version",
			config:   &Config{EVMVersion: "shanghai"},
			expected: "shanghai",
		},
		{
			name: "flag override",
			config: &Config{
				EVMVersion: "shanghai",
				Flags:      Flags{EVMVersion: "cancun"},
			},
			expected: "cancun",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.GetEVMVersion(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := New()
	path := cfg.GetOutputPath()

	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %s", path)
	}
	if filepath.Base(path) != DefaultOutputJSONFile {
		t.Errorf("expected file name %s, got %s", DefaultOutputJSONFile, filepath.Base(path))
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("EXTTEST_TESTS_DIR", "/custom/tests")
	t.Setenv("EXTTEST_EVM_VERSION", "cancun")

	cfg := New()
	cfg.ApplyEnv()

	if cfg.TestsDir != "/custom/tests" {
		t.Errorf("expected TestsDir /custom/tests, got %s", cfg.TestsDir)
	}
	if cfg.EVMVersion != "cancun" {
		t.Errorf("expected EVMVersion cancun, got %s", cfg.EVMVersion)
	}
}
