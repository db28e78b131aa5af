package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/veniger/solidity/internal/config"
	"github.com/veniger/solidity/internal/domain"
	"github.com/veniger/solidity/internal/execution"
	"github.com/veniger/solidity/internal/registry"
	"github.com/veniger/solidity/internal/solc"
	"github.com/veniger/solidity/internal/storage"
	"github.com/veniger/solidity/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config     *config.Config
	registry   *registry.Registry
	dispatcher *execution.Dispatcher
	storage    storage.Storage
	formatter  *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reg *registry.Registry,
	dispatcher *execution.Dispatcher,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		registry:   reg,
		dispatcher: dispatcher,
		storage:    st,
		formatter:  formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := rc.config.Flags

	binaryType, err := solc.ParseBinaryType(flags.SolcBinaryType)
	if err != nil {
		return err
	}

	if !flags.RunAll && len(flags.Run) == 0 {
		cmd.Usage()
		return fmt.Errorf("no external test selected: use --run or --run-all")
	}

	// Selection is validated in full before anything runs.
	tests, err := rc.registry.List()
	if err != nil {
		return err
	}
	var selected []domain.TestDefinition
	if flags.RunAll {
		selected = execution.SelectAll(tests)
	} else {
		selected, err = execution.Select(tests, flags.Run)
		if err != nil {
			return err
		}
	}

	if len(selected) == 0 {
		color.Yellow("No external tests to execute")
		return nil
	}

	progressBar := ui.NewProgressBar(len(selected))
	rc.dispatcher.SetProgress(progressBar)

	results, duration, dispatchErr := rc.dispatcher.Dispatch(selected, binaryType, flags.SolcBinaryPath)

	skipped := len(selected) - len(results)
	output := domain.NewRunOutput(results, duration, string(binaryType), flags.SolcBinaryPath, skipped)
	if err := rc.storage.Save(output); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	rc.formatter.PrintSummary(output)

	// A failing suite's exit code must reach the top level untouched.
	return dispatchErr
}
