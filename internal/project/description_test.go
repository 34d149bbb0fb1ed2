package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDescriptionFromReadme(t *testing.T) {
	cfg := initTestConfig(t)
	writeScriptProject(t, cfg, "bank-term-deposit")
	writeReadme(t, cfg, "bank-term-deposit", `# Bank Term Deposit

Predicts which customers will subscribe to a term deposit.

More detail further down.
`)
	records, err := Discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := "Predicts which customers will subscribe to a term deposit."
	if records[0].Description != want {
		t.Fatalf("description = %q, want %q", records[0].Description, want)
	}
}

func TestDescriptionSkipsHeadingsAndShortLines(t *testing.T) {
	cfg := initTestConfig(t)
	writeScriptProject(t, cfg, "churn-risk")
	writeReadme(t, cfg, "churn-risk", `# Churn Risk
## Overview
short line
A churn risk model trained on subscription usage data.
`)
	records, err := Discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := "A churn risk model trained on subscription usage data."
	if records[0].Description != want {
		t.Fatalf("description = %q, want %q", records[0].Description, want)
	}
}

func TestDescriptionFallbackWhenNoQualifyingLine(t *testing.T) {
	cfg := initTestConfig(t)
	writeScriptProject(t, cfg, "tiny_project")
	// Only headings and short lines in the scan window.
	writeReadme(t, cfg, "tiny_project", "# Tiny\n## Sub\nshort\nstill short\n")

	records, err := Discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := "Tiny Project - Data Science Project"
	if records[0].Description != want {
		t.Fatalf("description = %q, want %q", records[0].Description, want)
	}
}

func TestDescriptionFallbackWhenNoReadme(t *testing.T) {
	cfg := initTestConfig(t)
	writeScriptProject(t, cfg, "sales-forecasting")

	records, err := Discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := "Sales Forecasting - Data Science Project"
	if records[0].Description != want {
		t.Fatalf("description = %q, want %q", records[0].Description, want)
	}
}

func TestDescriptionIgnoresLinesBeyondScanWindow(t *testing.T) {
	cfg := initTestConfig(t)
	writeScriptProject(t, cfg, "deep-readme")
	var b strings.Builder
	b.WriteString("# Deep Readme\n")
	for i := 0; i < 12; i++ {
		b.WriteString("\n")
	}
	b.WriteString("This substantial line sits past the scan window.\n")
	writeReadme(t, cfg, "deep-readme", b.String())

	records, err := Discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := "Deep Readme - Data Science Project"
	if records[0].Description != want {
		t.Fatalf("description = %q, want %q", records[0].Description, want)
	}
}

func TestDescriptionUnreadableReadmeFallsBack(t *testing.T) {
	cfg := initTestConfig(t)
	writeScriptProject(t, cfg, "locked-docs")
	// A directory where the readme should be makes the open fail.
	if err := os.MkdirAll(filepath.Join(cfg.ProjectsDir(), "locked-docs", "README.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	records, err := Discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if records[0].Description != "Locked Docs - Data Science Project" {
		t.Fatalf("description = %q", records[0].Description)
	}
}

func TestDisplayName(t *testing.T) {
	rec := Record{Name: "bank_term-deposit"}
	if got := rec.DisplayName(); got != "Bank Term Deposit" {
		t.Fatalf("display name = %q", got)
	}
}
