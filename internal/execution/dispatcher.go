package execution

import (
	"time"

	"github.com/fatih/color"

	"github.com/veniger/solidity/internal/domain"
	"github.com/veniger/solidity/internal/registry"
	"github.com/veniger/solidity/internal/solc"
	"github.com/veniger/solidity/internal/ui"
)

// Select resolves the requested suite names against the registry, preserving
// the requested order. Every missing name is collected before failing so the
// user sees them all at once.
func Select(tests map[string]domain.TestDefinition, names []string) ([]domain.TestDefinition, error) {
	var missing []string
	selected := make([]domain.TestDefinition, 0, len(names))
	for _, name := range names {
		def, ok := tests[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		selected = append(selected, def)
	}
	if len(missing) > 0 {
		return nil, &domain.TestNotFoundError{Missing: missing}
	}
	return selected, nil
}

// SelectAll returns every registered suite in sorted name order.
func SelectAll(tests map[string]domain.TestDefinition) []domain.TestDefinition {
	selected := make([]domain.TestDefinition, 0, len(tests))
	for _, name := range registry.Names(tests) {
		selected = append(selected, tests[name])
	}
	return selected
}

// Dispatcher runs selected external test suites strictly sequentially,
// stopping at the first failure.
type Dispatcher struct {
	runner   CommandRunner
	progress *ui.ProgressBar
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(runner CommandRunner) *Dispatcher {
	return &Dispatcher{runner: runner}
}

// SetProgress sets the progress bar for the dispatch loop.
func (d *Dispatcher) SetProgress(progress *ui.ProgressBar) {
	d.progress = progress
}

// Dispatch invokes each suite as `<script> <binary-type> <binary-path>` in the
// given order. The first non-zero exit code stops the loop and is returned as
// a *domain.ExitCodeError so the process can propagate it verbatim. Results
// collected so far are returned in every case.
func (d *Dispatcher) Dispatch(selected []domain.TestDefinition, binaryType solc.BinaryType, binaryPath string) ([]domain.TestResult, time.Duration, error) {
	start := time.Now()
	var results []domain.TestResult
	passed, failed := 0, 0

	for _, test := range selected {
		color.Cyan("Running %s external test...", test.Name)

		testStart := time.Now()
		exitCode, err := d.runner.Run([]string{test.Path, string(binaryType), binaryPath}, RunOptions{})
		if err != nil {
			return results, time.Since(start), err
		}

		results = append(results, domain.TestResult{
			Name:     test.Name,
			Path:     test.Path,
			ExitCode: exitCode,
			Success:  exitCode == 0,
			Duration: time.Since(testStart),
		})

		if exitCode != 0 {
			failed++
			if d.progress != nil {
				d.progress.Update(passed, failed)
				d.progress.Finish()
			}
			return results, time.Since(start), &domain.ExitCodeError{Name: test.Name, Code: exitCode}
		}
		passed++
		if d.progress != nil {
			d.progress.Update(passed, failed)
		}
	}

	if d.progress != nil {
		d.progress.Finish()
	}
	return results, time.Since(start), nil
}
