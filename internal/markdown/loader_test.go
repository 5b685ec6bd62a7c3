package markdown

import (
	"context"
	"testing"
	"testing/fstest"
)

func testContentFS() fstest.MapFS {
	return fstest.MapFS{
		"first-post.md": &fstest.MapFile{
			Data: []byte("---\ntitle: First\ndate: \"2025-01-01\"\n---\nbody one\n"),
		},
		"second-post.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Second\ndate: \"2025-01-02\"\n---\nbody two\n"),
		},
		"notes.txt": &fstest.MapFile{
			Data: []byte("not markdown"),
		},
		"drafts/nested.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Nested\ndate: \"2025-01-03\"\n---\nbody three\n"),
		},
		"broken.md": &fstest.MapFile{
			Data: []byte("---\ntitle: [unterminated\n---\nbody\n"),
		},
	}
}

func TestLoaderLoadFile(t *testing.T) {
	loader := NewLoader(testContentFS(), LoaderConfig{})

	result, err := loader.LoadFile(context.Background(), "first-post.md", LoadParams{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if result.Document.FrontMatter.Title != "First" {
		t.Fatalf("unexpected title: %q", result.Document.FrontMatter.Title)
	}
	if len(result.Document.Checksum) == 0 {
		t.Fatal("expected checksum to be populated")
	}
	if len(result.Source) == 0 {
		t.Fatal("expected raw source to be retained")
	}
}

func TestLoaderLoadDirectoryRecursive(t *testing.T) {
	loader := NewLoader(testContentFS(), LoaderConfig{Recursive: true})

	var skipped []string
	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{
		OnError: func(path string, err error) {
			skipped = append(skipped, path)
		},
	})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(results))
	}
	// Results are sorted by path.
	if results[0].Document.FilePath != "drafts/nested.md" {
		t.Fatalf("unexpected first path: %q", results[0].Document.FilePath)
	}

	if len(skipped) != 1 || skipped[0] != "broken.md" {
		t.Fatalf("expected broken.md to be skipped, got %v", skipped)
	}
}

func TestLoaderLoadDirectoryNonRecursive(t *testing.T) {
	loader := NewLoader(testContentFS(), LoaderConfig{Recursive: false})

	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{
		OnError: func(string, error) {},
	})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	for _, result := range results {
		if result.Document.FilePath == "drafts/nested.md" {
			t.Fatal("nested entry should not load when recursion is off")
		}
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(results))
	}
}

func TestLoaderMalformedEntryFailsWithoutCallback(t *testing.T) {
	loader := NewLoader(testContentFS(), LoaderConfig{Recursive: true})

	if _, err := loader.LoadDirectory(context.Background(), ".", LoadParams{}); err == nil {
		t.Fatal("expected error when no skip callback is installed")
	}
}

func TestLoaderPatternOverride(t *testing.T) {
	loader := NewLoader(testContentFS(), LoaderConfig{Recursive: true})

	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{
		Pattern: "first-*.md",
	})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(results) != 1 || results[0].Document.FilePath != "first-post.md" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestLoaderCancelledContext(t *testing.T) {
	loader := NewLoader(testContentFS(), LoaderConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadDirectory(ctx, ".", LoadParams{}); err == nil {
		t.Fatal("expected context error")
	}
}
