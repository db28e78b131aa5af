package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/veniger/solidity/internal/config"
	"github.com/veniger/solidity/internal/execution"
	"github.com/veniger/solidity/internal/foundry"
	"github.com/veniger/solidity/internal/solc"
)

// FoundryCommand handles the foundry command
type FoundryCommand struct {
	config *config.Config
	runner execution.CommandRunner
}

// NewFoundryCommand creates a new FoundryCommand
func NewFoundryCommand(cfg *config.Config, runner execution.CommandRunner) *FoundryCommand {
	return &FoundryCommand{
		config: cfg,
		runner: runner,
	}
}

// Execute runs the command: setup, profile configuration for every requested
// preset, then a compile+test cycle per preset.
func (fc *FoundryCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := fc.config.Flags

	binaryType, err := solc.ParseBinaryType(flags.SolcBinaryType)
	if err != nil {
		return err
	}

	presets := solc.AvailablePresets
	if len(flags.Presets) > 0 {
		presets = make([]solc.Preset, 0, len(flags.Presets))
		for _, p := range flags.Presets {
			preset, err := solc.ParsePreset(p)
			if err != nil {
				return err
			}
			presets = append(presets, preset)
		}
	}
	evmVersion := fc.config.GetEVMVersion()

	projectRunner := foundry.NewRunner(foundry.TestConfig{
		BinaryType: binaryType,
		BinaryPath: flags.SolcBinaryPath,
		ConfigFile: fc.config.FoundryConfigFile,
	}, fc.runner, nil)

	if err := projectRunner.SetupEnvironment(flags.TestDir); err != nil {
		return err
	}
	if err := projectRunner.CompilerSettings(flags.SolcVersion, presets, evmVersion); err != nil {
		return err
	}
	for _, preset := range presets {
		if err := projectRunner.Compile(flags.SolcVersion, preset, evmVersion); err != nil {
			return err
		}
		if err := projectRunner.RunTest(preset); err != nil {
			return err
		}
	}

	color.Green("Foundry project %s passed under %d preset(s)", flags.TestDir, len(presets))
	return nil
}
