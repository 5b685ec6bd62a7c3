package buildlog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const integrationEntry = `---
title: Integration Entry
date: "2025-05-10"
category: rust
---
# Integration Entry

Rendered end to end.
`

const integrationProfile = `title: Integration Site
tagline: end to end
author:
  name: Tester
manifesto:
  - One line.
`

func newIntegrationModule(tb testing.TB) (*Module, string) {
	tb.Helper()

	root := tb.TempDir()
	contentDir := filepath.Join(root, "content")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		tb.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(contentDir, "integration-entry.md"), []byte(integrationEntry), 0o644); err != nil {
		tb.Fatalf("write entry: %v", err)
	}
	profilePath := filepath.Join(root, "site.yaml")
	if err := os.WriteFile(profilePath, []byte(integrationProfile), 0o644); err != nil {
		tb.Fatalf("write profile: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Content.Dir = contentDir
	cfg.Site.ProfilePath = profilePath
	cfg.Generator.OutputDir = filepath.Join(root, "dist")
	cfg.Generator.BaseURL = "https://example.com"
	cfg.Generator.StaticDir = ""
	cfg.Logging.Level = "error"

	module, err := New(cfg)
	if err != nil {
		tb.Fatalf("New: %v", err)
	}
	return module, filepath.Join(root, "dist")
}

func TestModuleBuildEndToEnd(t *testing.T) {
	module, outputDir := newIntegrationModule(t)

	result, err := module.Build(context.Background(), false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result == nil || result.PagesBuilt == 0 {
		t.Fatalf("expected pages built, got %+v", result)
	}

	wantFiles := []string{
		"index.html",
		"log/index.html",
		"log/integration-entry/index.html",
		"sitemap.xml",
		"feed.xml",
	}
	for _, name := range wantFiles {
		if _, err := os.Stat(filepath.Join(outputDir, filepath.FromSlash(name))); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestModuleContentAndRouter(t *testing.T) {
	module, _ := newIntegrationModule(t)

	posts, err := module.Content().LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "integration-entry" {
		t.Fatalf("unexpected posts: %+v", posts)
	}

	r := module.Router()
	r.Set(PostView(posts[0].Slug))
	if r.Current().Slug != "integration-entry" {
		t.Fatalf("unexpected router state: %+v", r.Current())
	}
}

func TestModuleClean(t *testing.T) {
	module, outputDir := newIntegrationModule(t)

	if _, err := module.Build(context.Background(), false); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := module.Clean(context.Background()); err != nil {
		t.Fatalf("Clean: %v", err)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty output dir, got %d entries", len(entries))
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = ""
	if _, err := New(cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}
