package domain

import "time"

// TestResult represents the outcome of dispatching one external test suite.
type TestResult struct {
	Name     string        `json:"name"`
	Path     string        `json:"path"`
	ExitCode int           `json:"exit_code"`
	Success  bool          `json:"success"`
	Duration time.Duration `json:"duration_ns"`
}

// RunMeta contains metadata about a dispatch run.
type RunMeta struct {
	TotalSuites     int     `json:"total_suites"`
	PassedSuites    int     `json:"passed_suites"`
	FailedSuites    int     `json:"failed_suites"`
	SkippedSuites   int     `json:"skipped_suites"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	SolcBinaryType  string  `json:"solc_binary_type"`
	SolcBinaryPath  string  `json:"solc_binary_path"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for a dispatch run.
type RunOutput struct {
	Meta    RunMeta      `json:"meta"`
	Details []TestResult `json:"details"`
}

// NewRunOutput assembles the persisted structure for a finished (or
// fail-fast aborted) dispatch run.
func NewRunOutput(results []TestResult, duration time.Duration, binaryType, binaryPath string, skipped int) *RunOutput {
	passed, failed := 0, 0
	for _, r := range results {
		if r.Success {
			passed++
		} else {
			failed++
		}
	}
	return &RunOutput{
		Meta: RunMeta{
			TotalSuites:     len(results),
			PassedSuites:    passed,
			FailedSuites:    failed,
			SkippedSuites:   skipped,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			SolcBinaryType:  binaryType,
			SolcBinaryPath:  binaryPath,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: results,
	}
}
