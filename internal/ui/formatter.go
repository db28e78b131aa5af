package ui

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/veniger/solidity/internal/domain"
)

// Formatter prints registry listings and run summaries.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintTestList prints the available external test names.
func (f *Formatter) PrintTestList(names []string) {
	color.Cyan("Available external tests:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}

// PrintSummary prints a per-suite result line and overall totals.
func (f *Formatter) PrintSummary(output *domain.RunOutput) {
	fmt.Println()
	for _, result := range output.Details {
		if result.Success {
			color.Green("  ✓ %s (%s)", result.Name, result.Duration)
		} else {
			color.Red("  ✗ %s (exit code %d, %s)", result.Name, result.ExitCode, result.Duration)
		}
	}
	fmt.Println()
	meta := output.Meta
	if meta.FailedSuites > 0 {
		color.Red("%d of %d external tests failed in %s", meta.FailedSuites, meta.TotalSuites, meta.Duration)
		if meta.SkippedSuites > 0 {
			color.Yellow("%d external test(s) not run after the first failure", meta.SkippedSuites)
		}
	} else {
		color.Green("All %d external tests passed in %s", meta.TotalSuites, meta.Duration)
	}
}
