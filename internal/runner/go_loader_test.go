package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestGoLoaderRunsMain(t *testing.T) {
	dir := t.TempDir()
	loaded := filepath.Join(dir, "loaded")
	ran := filepath.Join(dir, "ran")
	source := fmt.Sprintf(`package main

import "os"

var _ = touch(%q)

func touch(path string) error {
	return os.WriteFile(path, []byte("x"), 0o644)
}

func main() {
	touch(%q)
}
`, loaded, ran)
	entry := filepath.Join(dir, "main.go")
	if err := os.WriteFile(entry, []byte(source), 0o644); err != nil {
		t.Fatalf("write entry: %v", err)
	}

	if err := (GoLoader{}).LoadAndRun(entry, nil); err != nil {
		t.Fatalf("load and run: %v", err)
	}
	if _, err := os.Stat(loaded); err != nil {
		t.Fatalf("top-level definitions not executed: %v", err)
	}
	if _, err := os.Stat(ran); err != nil {
		t.Fatalf("main not invoked: %v", err)
	}
}

func TestGoLoaderMissingMainIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	source := `package main

func helper() int { return 42 }
`
	entry := filepath.Join(dir, "main.go")
	if err := os.WriteFile(entry, []byte(source), 0o644); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := (GoLoader{}).LoadAndRun(entry, nil); err != nil {
		t.Fatalf("expected a main-less unit to load cleanly, got %v", err)
	}
}

func TestGoLoaderSyntaxError(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "main.go")
	if err := os.WriteFile(entry, []byte("package main\n\nfunc {"), 0o644); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := (GoLoader{}).LoadAndRun(entry, nil); err == nil {
		t.Fatalf("expected error for malformed entry unit")
	}
}

func TestGoLoaderMissingFile(t *testing.T) {
	entry := filepath.Join(t.TempDir(), "absent.go")
	if err := (GoLoader{}).LoadAndRun(entry, nil); err == nil {
		t.Fatalf("expected error for missing entry file")
	}
}
