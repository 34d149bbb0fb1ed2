package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"portfolio/internal/config"
)

// Discover scans the configured projects directory and returns one Record
// per recognized project, in directory-listing order. A missing projects
// directory is treated as "no projects" to simplify startup.
func Discover(cfg *config.Config) ([]Record, error) {
	root := cfg.ProjectsDir()
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("project: read %s: %w", root, err)
	}

	var records []Record
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		rec, ok := classify(cfg, entry.Name(), dir)
		if !ok {
			continue
		}
		rec.Description = describe(dir, cfg.ReadmeFile(), entry.Name())
		records = append(records, rec)
	}
	return records, nil
}

// classify applies the shape rules in priority order: the script shape is
// checked before the notebook shape, so a directory offering both counts
// as a script project.
func classify(cfg *config.Config, name, dir string) (Record, bool) {
	script := filepath.Join(dir, "src", cfg.EntryScript())
	if fileExists(script) {
		return Record{Name: name, RootPath: dir, EntryPath: script, Kind: ScriptKind}, true
	}
	notebook := filepath.Join(dir, cfg.NotebookFile())
	if fileExists(notebook) {
		return Record{Name: name, RootPath: dir, EntryPath: notebook, Kind: NotebookKind}, true
	}
	return Record{}, false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
