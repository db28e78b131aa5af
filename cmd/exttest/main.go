package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veniger/solidity/internal/cli"
	"github.com/veniger/solidity/internal/cli/commands"
	"github.com/veniger/solidity/internal/config"
	"github.com/veniger/solidity/internal/domain"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Create root command
	rootCmd := &cobra.Command{
		Use:           "exttest",
		Short:         "Solidity external test harness",
		Long:          `Discover and run shell-script external test suites against a candidate solidity compiler build, and drive Foundry-based sample projects across compiler settings presets.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Help()
			return fmt.Errorf("no command specified: use list, run, foundry, or failures")
		},
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// A failing test script's exit code propagates verbatim; every other
		// handled failure maps to 1.
		var exitErr *domain.ExitCodeError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	return 0
}

// loadConfig reads the optional YAML config file (EXTTEST_CONFIG or
// ./exttest.yaml) and applies environment overrides on top of the defaults.
func loadConfig() (*config.Config, error) {
	path := os.Getenv("EXTTEST_CONFIG")
	if path == "" {
		path = "exttest.yaml"
		if _, err := os.Stat(path); err != nil {
			cfg := config.New()
			cfg.ApplyEnv()
			return cfg, nil
		}
	}
	return config.Load(path)
}
