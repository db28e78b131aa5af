package commands

import (
	"github.com/spf13/cobra"

	"github.com/veniger/solidity/internal/cli"
	"github.com/veniger/solidity/internal/config"
	"github.com/veniger/solidity/internal/execution"
	"github.com/veniger/solidity/internal/registry"
	"github.com/veniger/solidity/internal/storage"
	"github.com/veniger/solidity/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Foundry  *FoundryCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	reg := registry.New(cfg.TestsDir, cfg.ScriptExtension, cfg.SharedScriptName)
	runner := execution.NewExecRunner()
	dispatcher := execution.NewDispatcher(runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:      NewRunCommand(cfg, reg, dispatcher, jsonStorage, formatter),
		List:     NewListCommand(cfg, reg, formatter),
		Foundry:  NewFoundryCommand(cfg, runner),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run external tests",
		Long:  "Dispatch selected external test suites with the given compiler binary, stopping at the first failure",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVar(&flags.SolcBinaryType, "solc-binary-type", "", "Type of the solidity compiler binary to be used (native or solcjs)")
	runCmd.Flags().StringVar(&flags.SolcBinaryPath, "solc-binary-path", "", "Path to the solidity compiler binary")
	runCmd.Flags().StringSliceVar(&flags.Run, "run", nil, "Run one or more given external tests")
	runCmd.Flags().BoolVar(&flags.RunAll, "run-all", false, "Run all available external tests")
	runCmd.MarkFlagRequired("solc-binary-type")
	runCmd.MarkFlagRequired("solc-binary-path")
	runCmd.MarkFlagsMutuallyExclusive("run", "run-all")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all available external tests",
		Long:  "Scan the external tests directory and list registered test suites without executing them",
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)

	// Foundry command
	foundryCmd := &cobra.Command{
		Use:   "foundry",
		Short: "Build and test a Foundry project against a compiler build",
		Long:  "Configure per-preset Forge profiles for a sample project, then compile and test it under each preset",
		RunE:  c.Foundry.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	foundryCmd.Flags().StringVar(&flags.SolcBinaryType, "solc-binary-type", "native", "Type of the solidity compiler binary to be used (native or solcjs)")
	foundryCmd.Flags().StringVar(&flags.SolcBinaryPath, "solc-binary-path", "", "Path to the solidity compiler binary")
	foundryCmd.Flags().StringVar(&flags.SolcVersion, "solc-version", "", "Full version string of the compiler under test")
	foundryCmd.Flags().StringVarP(&flags.TestDir, "test-dir", "t", "", "Path to the Foundry project to build and test")
	foundryCmd.Flags().StringSliceVar(&flags.Presets, "preset", nil, "Compiler settings preset(s) to use (default: all presets)")
	foundryCmd.Flags().StringVar(&flags.EVMVersion, "evm-version", "", "EVM version to target")
	foundryCmd.MarkFlagRequired("solc-binary-path")
	foundryCmd.MarkFlagRequired("solc-version")
	foundryCmd.MarkFlagRequired("test-dir")
	rootCmd.AddCommand(foundryCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failed external tests interactively",
		Long:  "Display failed suites from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
