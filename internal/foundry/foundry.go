package foundry

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/veniger/solidity/internal/execution"
	"github.com/veniger/solidity/internal/solc"
)

// profileEnvVar selects the active profile when forge runs.
const profileEnvVar = "FOUNDRY_PROFILE"

// profileTemplate renders one configuration block per compiler settings
// preset, appended to the project's foundry.toml.
var profileTemplate = template.Must(template.New("profile").Parse(`
[profile.{{.Name}}]
gas_reports = ["*"]
auto_detect_solc = false
solc = "{{.Solc}}"
evm_version = "{{.EVMVersion}}"
optimizer = {{.Optimizer}}
via_ir = {{.ViaIR}}
[profile.{{.Name}}.optimizer_details]
yul = {{.Yul}}
`))

type profileData struct {
	Name       string
	Solc       string
	EVMVersion string
	Optimizer  bool
	ViaIR      bool
	Yul        bool
}

// TestConfig describes the compiler binary under test and the project's
// configuration file. Immutable once constructed.
type TestConfig struct {
	BinaryType solc.BinaryType
	BinaryPath string
	ConfigFile string
}

// Runner configures and runs Foundry-based projects against a candidate
// compiler build.
type Runner struct {
	config  TestConfig
	cmd     execution.CommandRunner
	hooks   Hooks
	testDir string
}

// NewRunner creates a Foundry project runner. A nil hooks falls back to the
// default forge invocations.
func NewRunner(config TestConfig, cmd execution.CommandRunner, hooks Hooks) *Runner {
	if hooks == nil {
		hooks = NewForgeHooks(cmd)
	}
	return &Runner{config: config, cmd: cmd, hooks: hooks}
}

// onTestDir guards an operation on the project directory: SetupEnvironment
// must have run first, and the previous working directory is restored when
// the operation returns.
func (r *Runner) onTestDir(fn func() error) error {
	if r.testDir == "" {
		return fmt.Errorf("project environment not initialized: call SetupEnvironment first")
	}
	return withWorkDir(r.testDir, fn)
}

// SetupEnvironment records the project directory and verifies the build tool
// is available.
func (r *Runner) SetupEnvironment(testDir string) error {
	r.testDir = testDir
	color.Cyan("Configuring Foundry building environment...")
	if _, err := exec.LookPath("forge"); err != nil {
		// TODO: support installing foundry or pointing at a forge built from source.
		return fmt.Errorf("forge not found on PATH and automatic foundry installation is not implemented")
	}
	return r.hooks.Setup(testDir)
}

// CompilerSettings renders one profile block per preset, appends them to the
// project's configuration file, and installs project dependencies.
func (r *Runner) CompilerSettings(solcVersion string, presets []solc.Preset, evmVersion string) error {
	if len(presets) == 0 {
		presets = solc.AvailablePresets
	}
	return r.onTestDir(func() error {
		fmt.Printf(`Configuring Forge profiles...
-------------------------------------
Config file: %s
Binary type: %s
Compiler path: %s
Compiler version: %s
-------------------------------------
`, r.config.ConfigFile, r.config.BinaryType, r.config.BinaryPath, solcVersion)

		// Forge only accepts a native compiler path in its config.
		if r.config.BinaryType != solc.BinaryTypeNative {
			return fmt.Errorf("%s binaries are not supported with Foundry: use the %q binary type", r.config.BinaryType, solc.BinaryTypeNative)
		}

		var rendered strings.Builder
		for _, preset := range presets {
			settings, err := solc.SettingsFromPreset(preset, evmVersion)
			if err != nil {
				return err
			}
			err = profileTemplate.Execute(&rendered, profileData{
				Name:       solc.ProfileName(preset),
				Solc:       r.config.BinaryPath,
				EVMVersion: evmVersion,
				Optimizer:  settings.OptimizerEnabled,
				ViaIR:      settings.ViaIR,
				Yul:        settings.YulDetails,
			})
			if err != nil {
				return fmt.Errorf("rendering profile for preset %s: %w", preset, err)
			}
		}

		f, err := os.OpenFile(r.config.ConfigFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("opening %s: %w", r.config.ConfigFile, err)
		}
		if _, err := f.WriteString(rendered.String()); err != nil {
			f.Close()
			return fmt.Errorf("appending profiles to %s: %w", r.config.ConfigFile, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", r.config.ConfigFile, err)
		}

		return runTool(r.cmd, []string{"forge", "install"}, nil)
	})
}

// Compile builds the project under the profile derived from preset.
func (r *Runner) Compile(solcVersion string, preset solc.Preset, evmVersion string) error {
	return r.onTestDir(func() error {
		settings, err := solc.SettingsFromPreset(preset, evmVersion)
		if err != nil {
			return err
		}
		fmt.Printf(`Using Forge profile...
-------------------------------------
Settings preset: %s
Settings: %+v
EVM version: %s
Compiler version: %s
Compiler version (full): %s
-------------------------------------
`, preset, settings, evmVersion, solc.ShortVersion(solcVersion), solcVersion)

		return r.hooks.Compile(r.testDir, profileEnv(preset))
	})
}

// RunTest runs the project tests under the profile derived from preset.
func (r *Runner) RunTest(preset solc.Preset) error {
	return r.onTestDir(func() error {
		return r.hooks.Test(r.testDir, profileEnv(preset))
	})
}

// Clean removes the project's build artifacts and cache.
func (r *Runner) Clean() error {
	return r.onTestDir(func() error {
		return runTool(r.cmd, []string{"forge", "clean"}, nil)
	})
}

// profileEnv builds the profile-selecting overlay for a single invocation.
// Each call derives it from the preset so no environment state is carried
// between operations.
func profileEnv(preset solc.Preset) []string {
	return []string{profileEnvVar + "=" + solc.ProfileName(preset)}
}
