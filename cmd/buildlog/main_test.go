package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunRequiresCommand(t *testing.T) {
	if err := run(nil); err == nil {
		t.Fatal("expected usage error")
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	if err := run([]string{"deploy"}); err == nil {
		t.Fatal("expected unknown command error")
	}
}

func TestRunBuild(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	entry := "---\ntitle: CLI Entry\ndate: \"2025-05-01\"\n---\nbody\n"
	if err := os.WriteFile(filepath.Join(contentDir, "cli-entry.md"), []byte(entry), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	outputDir := filepath.Join(root, "dist")

	err := run([]string{
		"build",
		"-content-dir", contentDir,
		"-output-dir", outputDir,
		"-profile", filepath.Join(root, "absent.yaml"),
		"-static-dir", "",
		"-log-level", "error",
	})
	if err != nil {
		t.Fatalf("run build: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "log", "cli-entry", "index.html")); err != nil {
		t.Fatalf("expected generated post page: %v", err)
	}
}

func TestRunBuildDryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	outputDir := filepath.Join(root, "dist")

	err := run([]string{
		"build",
		"-dry-run",
		"-content-dir", contentDir,
		"-output-dir", outputDir,
		"-profile", filepath.Join(root, "absent.yaml"),
		"-static-dir", "",
		"-log-level", "error",
	})
	if err != nil {
		t.Fatalf("run build: %v", err)
	}

	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Fatalf("expected no output directory, got %v", err)
	}
}
