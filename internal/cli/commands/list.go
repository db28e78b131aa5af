package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/veniger/solidity/internal/config"
	"github.com/veniger/solidity/internal/registry"
	"github.com/veniger/solidity/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	registry  *registry.Registry
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, reg *registry.Registry, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		registry:  reg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := lc.registry.List()
	if err != nil {
		return err
	}

	if len(tests) == 0 {
		color.Yellow("No external tests found")
		return nil
	}

	lc.formatter.PrintTestList(registry.Names(tests))
	return nil
}
