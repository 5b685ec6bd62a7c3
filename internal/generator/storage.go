package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type writeCategory string

const (
	categoryPage     writeCategory = "page"
	categoryAsset    writeCategory = "asset"
	categorySitemap  writeCategory = "sitemap"
	categoryRobots   writeCategory = "robots"
	categoryFeed     writeCategory = "feed"
	categoryManifest writeCategory = "manifest"
)

// writeFileRequest describes a file write operation routed through the artifact writer.
type writeFileRequest struct {
	Path        string
	Content     io.Reader
	Size        int64
	Category    writeCategory
	ContentType string
	Checksum    string
}

// ArtifactWriter abstracts persistence for generator outputs. Paths are
// slash-separated and relative to the writer's root.
type ArtifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req writeFileRequest) error
	RemoveAll(ctx context.Context, path string) error
}

// NewFSWriter returns a writer persisting artifacts below root on the local
// filesystem.
func NewFSWriter(root string) ArtifactWriter {
	return &fsWriter{root: filepath.Clean(root)}
}

type fsWriter struct {
	root string
}

func (w *fsWriter) EnsureDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(dir) == "" || dir == "." {
		dir = ""
	}
	return os.MkdirAll(filepath.Join(w.root, filepath.FromSlash(dir)), 0o755)
}

func (w *fsWriter) WriteFile(ctx context.Context, req writeFileRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Content == nil {
		return errors.New("generator: write requires content reader")
	}
	if strings.TrimSpace(req.Path) == "" {
		return errors.New("generator: write requires path")
	}

	target := filepath.Join(w.root, filepath.FromSlash(req.Path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	file, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, req.Content); err != nil {
		file.Close()
		return fmt.Errorf("generator: write %s: %w", req.Path, err)
	}
	return file.Close()
}

func (w *fsWriter) RemoveAll(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(dir) == "" || dir == "." {
		// Remove the root's contents but keep the directory itself so a
		// serving process holding it open keeps working.
		entries, err := os.ReadDir(w.root)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		for _, entry := range entries {
			if err := os.RemoveAll(filepath.Join(w.root, entry.Name())); err != nil {
				return err
			}
		}
		return nil
	}
	return os.RemoveAll(filepath.Join(w.root, filepath.FromSlash(dir)))
}

type noopWriter struct{}

func (noopWriter) EnsureDir(context.Context, string) error { return nil }

func (noopWriter) WriteFile(context.Context, writeFileRequest) error { return nil }

func (noopWriter) RemoveAll(context.Context, string) error { return nil }

func ensureParentDir(ctx context.Context, writer ArtifactWriter, output string) error {
	dir := path.Dir(output)
	if dir == "." || dir == "" {
		return nil
	}
	return writer.EnsureDir(ctx, dir)
}
