package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/veniger/solidity/internal/domain"
)

// Registry discovers dispatchable external test scripts in a directory.
type Registry struct {
	dir       string
	extension string
	exclude   string
}

// New creates a Registry scanning dir for scripts with the given extension,
// skipping the shared-utility script named exclude.
func New(dir, extension, exclude string) *Registry {
	return &Registry{dir: dir, extension: extension, exclude: exclude}
}

// List returns all registered external tests keyed by name. A filesystem
// error is surfaced to the caller: an empty registry must mean "no tests
// defined", never "directory was unreadable".
func (r *Registry) List() (map[string]domain.TestDefinition, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("reading external tests directory: %w", err)
	}

	tests := make(map[string]domain.TestDefinition)
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		// Script names follow <name>.<ext>; anything else in the test
		// directory is a configuration error.
		parts := strings.Split(entry.Name(), ".")
		if len(parts) != 2 {
			return nil, fmt.Errorf("unexpected file %q in %s: test scripts must be named <name>.%s", entry.Name(), r.dir, r.extension)
		}
		name, ext := parts[0], parts[1]
		if ext != r.extension || name == r.exclude {
			continue
		}
		tests[name] = domain.TestDefinition{
			Name: name,
			Path: filepath.Join(r.dir, entry.Name()),
		}
	}
	return tests, nil
}

// Names returns the registered test names in sorted order.
func Names(tests map[string]domain.TestDefinition) []string {
	names := make([]string, 0, len(tests))
	for name := range tests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
