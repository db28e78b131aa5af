package storage

import (
	"testing"
	"time"

	"github.com/veniger/solidity/internal/config"
	"github.com/veniger/solidity/internal/domain"
)

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	cfg := config.New()
	cfg.OutputJSONDir = t.TempDir()

	st := NewJSONStorage(cfg)

	results := []domain.TestResult{
		{Name: "erc20", Path: "/scripts/erc20.sh", ExitCode: 0, Success: true, Duration: time.Second},
		{Name: "gnosis", Path: "/scripts/gnosis.sh", ExitCode: 3, Success: false, Duration: 2 * time.Second},
	}
	if err := st.Save(domain.NewRunOutput(results, 3*time.Second, "native", "/opt/solc", 0)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Meta.TotalSuites != 2 || loaded.Meta.FailedSuites != 1 {
		t.Errorf("unexpected meta: %+v", loaded.Meta)
	}
	if len(loaded.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(loaded.Details))
	}
	if loaded.Details[1].Name != "gnosis" || loaded.Details[1].ExitCode != 3 {
		t.Errorf("unexpected failed suite: %+v", loaded.Details[1])
	}
}

func TestJSONStorage_Load_MissingFile(t *testing.T) {
	cfg := config.New()
	cfg.OutputJSONDir = t.TempDir()

	st := NewJSONStorage(cfg)
	if _, err := st.Load(); err == nil {
		t.Fatal("expected error when no run has been saved")
	}
}
