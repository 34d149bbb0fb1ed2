// Package project discovers portfolio projects on disk.
//
// A project is any immediate subdirectory of the projects dir that matches
// one of two shapes: a script project carrying src/<entry script>, or a
// notebook project carrying <notebook file> in its root. Everything else is
// ignored. The scan runs once per launcher invocation and the resulting set
// is immutable afterwards.
package project

import (
	"strings"
)

// Kind tags the shape a project directory matched at scan time.
type Kind string

const (
	ScriptKind   Kind = "script"
	NotebookKind Kind = "notebook"
)

// Record describes one discovered project directory.
type Record struct {
	// Name is the directory base name, unique within one scan.
	Name string

	// RootPath is the absolute project directory.
	RootPath string

	// EntryPath is the absolute entry script or notebook file.
	EntryPath string

	Kind Kind

	// Description is never empty: either mined from the readme or
	// synthesized from the name.
	Description string
}

// DisplayName returns the name with separators replaced and words title-cased,
// matching how the listing presents projects.
func (r Record) DisplayName() string {
	return titleCase(r.Name)
}

func titleCase(name string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	words := strings.Fields(cleaned)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// Names returns the record names in listing order.
func Names(records []Record) []string {
	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Name
	}
	return names
}
