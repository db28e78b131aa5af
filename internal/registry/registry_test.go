package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, dir string, names []string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/usr/bin/env bash\n"), 0755); err != nil {
			t.Fatalf("failed to create file %s: %v", name, err)
		}
	}
}

func TestRegistry_List(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, []string{
		"erc20.sh",
		"gnosis.sh",
		"zeppelin.sh",
		"common.sh",
		"README.md",
	})
	if err := os.Mkdir(filepath.Join(tmpDir, "helpers.sh"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	reg := New(tmpDir, "sh", "common")
	tests, err := reg.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Three scripts: common.sh excluded, README.md wrong extension,
	// helpers.sh is a directory.
	if len(tests) != 3 {
		t.Errorf("expected 3 tests, got %d", len(tests))
	}
	for _, name := range []string{"erc20", "gnosis", "zeppelin"} {
		def, ok := tests[name]
		if !ok {
			t.Errorf("expected test %q in registry", name)
			continue
		}
		if def.Name != name {
			t.Errorf("expected name %q, got %q", name, def.Name)
		}
		if def.Path != filepath.Join(tmpDir, name+".sh") {
			t.Errorf("unexpected path for %q: %s", name, def.Path)
		}
	}
}

func TestRegistry_List_EmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, []string{"common.sh"})

	reg := New(tmpDir, "sh", "common")
	tests, err := reg.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tests) != 0 {
		t.Errorf("expected empty registry, got %d entries", len(tests))
	}
}

func TestRegistry_List_UnreadableDirectory(t *testing.T) {
	reg := New("/non/existent/path", "sh", "common")
	_, err := reg.List()
	if err == nil {
		t.Fatal("expected error for unreadable directory")
	}
}

func TestRegistry_List_MalformedFileNames(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
	}{
		{name: "no separator", fileName: "notes"},
		{name: "two separators", fileName: "erc20.v2.sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeFiles(t, tmpDir, []string{"erc20.sh", tt.fileName})

			reg := New(tmpDir, "sh", "common")
			_, err := reg.List()
			if err == nil {
				t.Fatalf("expected error for file name %q", tt.fileName)
			}
			if !strings.Contains(err.Error(), tt.fileName) {
				t.Errorf("error should name the offending file, got: %v", err)
			}
		})
	}
}

func TestNames(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, []string{"zeppelin.sh", "erc20.sh", "gnosis.sh"})

	reg := New(tmpDir, "sh", "common")
	tests, err := reg.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := Names(tests)
	expected := []string{"erc20", "gnosis", "zeppelin"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d names, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("expected names[%d] = %q, got %q", i, name, names[i])
		}
	}
}
