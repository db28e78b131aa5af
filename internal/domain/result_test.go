package domain

import (
	"testing"
	"time"
)

func TestNewRunOutput(t *testing.T) {
	results := []TestResult{
		{Name: "erc20", ExitCode: 0, Success: true},
		{Name: "gnosis", ExitCode: 3, Success: false},
	}

	output := NewRunOutput(results, 90*time.Second, "native", "/opt/solc", 1)

	meta := output.Meta
	if meta.TotalSuites != 2 {
		t.Errorf("TotalSuites = %d, want 2", meta.TotalSuites)
	}
	if meta.PassedSuites != 1 {
		t.Errorf("PassedSuites = %d, want 1", meta.PassedSuites)
	}
	if meta.FailedSuites != 1 {
		t.Errorf("FailedSuites = %d, want 1", meta.FailedSuites)
	}
	if meta.SkippedSuites != 1 {
		t.Errorf("SkippedSuites = %d, want 1", meta.SkippedSuites)
	}
	if meta.DurationSeconds != 90 {
		t.Errorf("DurationSeconds = %f, want 90", meta.DurationSeconds)
	}
	if meta.SolcBinaryType != "native" || meta.SolcBinaryPath != "/opt/solc" {
		t.Errorf("unexpected binary metadata: %+v", meta)
	}
	if len(output.Details) != 2 {
		t.Errorf("Details = %d entries, want 2", len(output.Details))
	}
}
