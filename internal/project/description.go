package project

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const (
	// descriptionScanLimit bounds the readme scan to the lines right after
	// the title; anything deeper is body text, not a summary.
	descriptionScanLimit = 10

	// descriptionMinLength filters out badges, dividers and stub lines.
	descriptionMinLength = 20
)

// describe derives a human-readable description for a project directory.
// It mines the readme first and falls back to a name-derived description.
// Read errors are swallowed: a broken readme never fails discovery.
func describe(dir, readmeName, projectName string) string {
	if desc, ok := readmeSummary(filepath.Join(dir, readmeName)); ok {
		return desc
	}
	return titleCase(projectName) + " - Data Science Project"
}

// readmeSummary scans lines 2 through 10 of the document for the first
// substantial line after the title: trimmed, non-empty, not a heading, and
// longer than descriptionMinLength characters.
func readmeSummary(path string) (string, bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for line := 1; line <= descriptionScanLimit && scanner.Scan(); line++ {
		if line == 1 {
			continue
		}
		stripped := strings.TrimSpace(scanner.Text())
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		if len(stripped) > descriptionMinLength {
			return stripped, true
		}
	}
	return "", false
}
