// internal/config/config.go
//
// This package handles configuration and the .portfolio directory structure.
// Every repository that uses the launcher gets a .portfolio/ folder created
// in its root, holding the session log and an optional config.yaml that can
// rename the conventional layout pieces (projects dir, entry script, ...).

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// PortfolioDir is the name of the directory we create in the repo root.
	PortfolioDir = ".portfolio"

	defaultProjectsDir  = "projects"
	defaultEntryScript  = "main.go"
	defaultNotebookFile = "notebook.ipynb"
	defaultReadmeFile   = "README.md"
)

const defaultConfigYAML = `# portfolio launcher configuration
version: 1

# Where project directories live, relative to the repository root.
projects_dir: projects

# Layout conventions inside each project directory.
layout:
  entry_script: main.go
  notebook_file: notebook.ipynb
  readme_file: README.md
`

// Layout names the conventional files the discovery scan looks for inside
// each project directory.
type Layout struct {
	EntryScript  string `yaml:"entry_script"`
	NotebookFile string `yaml:"notebook_file"`
	ReadmeFile   string `yaml:"readme_file"`
}

// Settings models .portfolio/config.yaml.
type Settings struct {
	Version     int    `yaml:"version"`
	ProjectsDir string `yaml:"projects_dir"`
	Layout      Layout `yaml:"layout"`
}

// Config holds the runtime configuration for one launcher invocation.
type Config struct {
	// RepoRoot is the directory the launcher was started from.
	RepoRoot string

	// PortfolioDir is RepoRoot/.portfolio
	PortfolioDir string

	Settings Settings
}

// InitPortfolioDir creates the .portfolio directory structure in the given
// repository root. Called once at startup, before discovery.
//
// Structure created:
// .portfolio/
// ├── logs/          <- session and run-audit log
// └── config.yaml    <- layout overrides (seeded with defaults)
func InitPortfolioDir(repoRoot string) error {
	dir := filepath.Join(repoRoot, PortfolioDir)
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureConfigFile(filepath.Join(dir, "config.yaml"))
}

// New loads the launcher configuration for the given repository root.
// A missing config file is not an error; defaults apply.
func New(repoRoot string) (*Config, error) {
	absolute, err := filepath.Abs(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("config: resolve repo root: %w", err)
	}
	cfg := &Config{
		RepoRoot:     absolute,
		PortfolioDir: filepath.Join(absolute, PortfolioDir),
		Settings:     defaultSettings(),
	}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProjectsDir returns the absolute path of the directory scanned for projects.
func (c *Config) ProjectsDir() string {
	return filepath.Join(c.RepoRoot, c.Settings.ProjectsDir)
}

// EntryScript returns the entry file name looked up under <project>/src/.
func (c *Config) EntryScript() string {
	return c.Settings.Layout.EntryScript
}

// NotebookFile returns the notebook file name looked up in the project root.
func (c *Config) NotebookFile() string {
	return c.Settings.Layout.NotebookFile
}

// ReadmeFile returns the document name mined for project descriptions.
func (c *Config) ReadmeFile() string {
	return c.Settings.Layout.ReadmeFile
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.PortfolioDir, "logs")
}

// ConfigPath returns the on-disk location of the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.PortfolioDir, "config.yaml")
}

func (c *Config) loadSettings() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Settings = parsed
	return nil
}

func defaultSettings() Settings {
	return Settings{
		Version:     1,
		ProjectsDir: defaultProjectsDir,
		Layout: Layout{
			EntryScript:  defaultEntryScript,
			NotebookFile: defaultNotebookFile,
			ReadmeFile:   defaultReadmeFile,
		},
	}
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	if strings.TrimSpace(s.ProjectsDir) == "" {
		s.ProjectsDir = defaultProjectsDir
	}
	if strings.TrimSpace(s.Layout.EntryScript) == "" {
		s.Layout.EntryScript = defaultEntryScript
	}
	if strings.TrimSpace(s.Layout.NotebookFile) == "" {
		s.Layout.NotebookFile = defaultNotebookFile
	}
	if strings.TrimSpace(s.Layout.ReadmeFile) == "" {
		s.Layout.ReadmeFile = defaultReadmeFile
	}
}

func (s *Settings) normalize() {
	s.ProjectsDir = strings.TrimSpace(s.ProjectsDir)
	s.Layout.EntryScript = strings.TrimSpace(s.Layout.EntryScript)
	s.Layout.NotebookFile = strings.TrimSpace(s.Layout.NotebookFile)
	s.Layout.ReadmeFile = strings.TrimSpace(s.Layout.ReadmeFile)
}

func (s Settings) validate() error {
	if s.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	if filepath.IsAbs(s.ProjectsDir) {
		return fmt.Errorf("projects_dir must be relative to the repository root")
	}
	for _, name := range []struct {
		field, value string
	}{
		{"layout.entry_script", s.Layout.EntryScript},
		{"layout.notebook_file", s.Layout.NotebookFile},
		{"layout.readme_file", s.Layout.ReadmeFile},
	} {
		if strings.ContainsRune(name.value, os.PathSeparator) {
			return fmt.Errorf("%s must be a bare file name, got %q", name.field, name.value)
		}
	}
	return nil
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
