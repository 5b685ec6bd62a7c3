package generator

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path"
	"strings"
)

// copyAssets mirrors the configured static directory into the output tree
// under static/. A missing directory is a diagnostic, not a failure, so
// sites without assets build cleanly.
func (s *service) copyAssets(ctx context.Context, writer ArtifactWriter) (int, []RenderDiagnostic, error) {
	staticDir := strings.TrimSpace(s.cfg.StaticDir)
	if staticDir == "" {
		return 0, nil, nil
	}

	if _, err := os.Stat(staticDir); err != nil {
		s.logger.Debug("static directory unavailable, skipping assets", "path", staticDir, "error", err)
		return 0, []RenderDiagnostic{{Route: "/static/", Message: "static directory unavailable: " + err.Error()}}, nil
	}

	assetFS := os.DirFS(staticDir)
	copied := 0

	walkErr := fs.WalkDir(assetFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		data, err := fs.ReadFile(assetFS, p)
		if err != nil {
			return err
		}

		output := path.Join("static", p)
		if err := ensureParentDir(ctx, writer, output); err != nil {
			return err
		}
		if err := writer.WriteFile(ctx, writeFileRequest{
			Path:     output,
			Content:  bytes.NewReader(data),
			Size:     int64(len(data)),
			Category: categoryAsset,
			Checksum: computeHash(data),
		}); err != nil {
			return err
		}
		copied++
		return nil
	})
	if walkErr != nil {
		return copied, nil, walkErr
	}

	return copied, nil, nil
}
