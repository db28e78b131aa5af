package domain

import (
	"fmt"
	"strings"
)

// ExitCodeError carries the exit code of a failed external test script so the
// top level can propagate it verbatim instead of remapping it to 1.
type ExitCodeError struct {
	Name string // Suite that failed
	Code int    // Exit code returned by the script
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("external test %s failed with exit code %d", e.Name, e.Code)
}

// TestNotFoundError reports every requested suite name absent from the
// registry, not just the first one.
type TestNotFoundError struct {
	Missing []string
}

func (e *TestNotFoundError) Error() string {
	return fmt.Sprintf("external test(s) not found: %s", strings.Join(e.Missing, " "))
}
