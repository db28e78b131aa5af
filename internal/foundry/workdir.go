package foundry

import (
	"fmt"
	"os"
)

// withWorkDir runs fn with dir as the process working directory and restores
// the previous directory on every exit path, success or failure.
func withWorkDir(dir string, fn func() error) error {
	prev, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("entering %s: %w", dir, err)
	}
	defer os.Chdir(prev)
	return fn()
}
