package generator

import (
	"context"
	"io"
	"sync"
)

// MemoryWriter is an ArtifactWriter keeping every artifact in memory. It
// backs tests and programmatic build inspection without touching disk.
type MemoryWriter struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemoryWriter returns an empty in-memory writer.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{files: map[string][]byte{}}
}

func (w *MemoryWriter) EnsureDir(ctx context.Context, path string) error {
	return ctx.Err()
}

func (w *MemoryWriter) WriteFile(ctx context.Context, req writeFileRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := io.ReadAll(req.Content)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[req.Path] = data
	return nil
}

func (w *MemoryWriter) RemoveAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if path == "." || path == "" {
		w.files = map[string][]byte{}
		return nil
	}
	delete(w.files, path)
	return nil
}

// File returns the stored content for a path.
func (w *MemoryWriter) File(path string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	data, ok := w.files[path]
	return data, ok
}

// Paths lists every stored artifact path.
func (w *MemoryWriter) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.files))
	for path := range w.files {
		out = append(out, path)
	}
	return out
}

// Len reports how many artifacts are stored.
func (w *MemoryWriter) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.files)
}
