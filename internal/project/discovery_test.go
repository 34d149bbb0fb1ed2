package project

import (
	"os"
	"path/filepath"
	"testing"

	"portfolio/internal/config"
)

func initTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	return cfg
}

func writeScriptProject(t *testing.T, cfg *config.Config, name string) {
	t.Helper()
	dir := filepath.Join(cfg.ProjectsDir(), name, "src")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	source := "package main\n\nfunc main() {}\n"
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte(source), 0o644); err != nil {
		t.Fatalf("write entry script: %v", err)
	}
}

func writeNotebookProject(t *testing.T, cfg *config.Config, name string) {
	t.Helper()
	dir := filepath.Join(cfg.ProjectsDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notebook.ipynb"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write notebook: %v", err)
	}
}

func writeReadme(t *testing.T, cfg *config.Config, name, contents string) {
	t.Helper()
	path := filepath.Join(cfg.ProjectsDir(), name, "README.md")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write readme: %v", err)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	cfg := initTestConfig(t)
	records, err := Discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestDiscoverClassifiesShapes(t *testing.T) {
	cfg := initTestConfig(t)
	writeScriptProject(t, cfg, "churn-model")
	writeNotebookProject(t, cfg, "eda-notebook")

	// A bare directory matches neither shape and must be excluded.
	if err := os.MkdirAll(filepath.Join(cfg.ProjectsDir(), "not-a-project"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Loose files in the projects dir are not projects either.
	if err := os.WriteFile(filepath.Join(cfg.ProjectsDir(), "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	records, err := Discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %v", len(records), Names(records))
	}
	byName := map[string]Record{}
	for _, rec := range records {
		byName[rec.Name] = rec
	}
	script, ok := byName["churn-model"]
	if !ok || script.Kind != ScriptKind {
		t.Fatalf("churn-model not classified as script: %+v", script)
	}
	if want := filepath.Join(cfg.ProjectsDir(), "churn-model", "src", "main.go"); script.EntryPath != want {
		t.Errorf("entry path = %s, want %s", script.EntryPath, want)
	}
	notebook, ok := byName["eda-notebook"]
	if !ok || notebook.Kind != NotebookKind {
		t.Fatalf("eda-notebook not classified as notebook: %+v", notebook)
	}
}

func TestDiscoverScriptShapeWinsOverNotebook(t *testing.T) {
	cfg := initTestConfig(t)
	writeScriptProject(t, cfg, "hybrid")
	writeNotebookProject(t, cfg, "hybrid")

	records, err := Discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Kind != ScriptKind {
		t.Fatalf("expected script classification, got %s", records[0].Kind)
	}
}

func TestDiscoverHonorsLayoutOverrides(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, config.PortfolioDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	contents := "version: 1\nprojects_dir: showcase\nlayout:\n  entry_script: run.go\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(root)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	src := filepath.Join(cfg.ProjectsDir(), "custom", "src")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "run.go"), []byte("package main\n"), 0o644); err != nil {
		t.Fatalf("write entry: %v", err)
	}

	records, err := Discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(records) != 1 || records[0].Name != "custom" {
		t.Fatalf("expected custom project, got %v", Names(records))
	}
}

func TestDiscoverOrderIsListingOrder(t *testing.T) {
	cfg := initTestConfig(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		writeScriptProject(t, cfg, name)
	}
	records, err := Discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	got := Names(records)
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
