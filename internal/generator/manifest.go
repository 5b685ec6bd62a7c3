package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	manifestFileName    = ".buildlog-manifest.json"
	manifestFileVersion = 1
)

// buildManifest records what the last build produced so operators can audit
// deployments and diff consecutive runs.
type buildManifest struct {
	Version     int            `json:"version"`
	BuildID     string         `json:"build_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Pages       []manifestPage `json:"pages"`
}

type manifestPage struct {
	Route    string `json:"route"`
	Output   string `json:"output"`
	Checksum string `json:"checksum"`
	Size     int    `json:"size"`
}

func newBuildManifest(result *BuildResult) *buildManifest {
	manifest := &buildManifest{
		Version:     manifestFileVersion,
		BuildID:     result.BuildID.String(),
		GeneratedAt: result.GeneratedAt,
	}
	for _, page := range result.Rendered {
		manifest.Pages = append(manifest.Pages, manifestPage{
			Route:    page.Route,
			Output:   page.Output,
			Checksum: page.Checksum,
			Size:     page.Size,
		})
	}
	// Stable ordering for deterministic output.
	sort.Slice(manifest.Pages, func(i, j int) bool {
		return manifest.Pages[i].Route < manifest.Pages[j].Route
	})
	return manifest
}

func (m *buildManifest) marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.MarshalIndent(m, "", "  ")
}

func (s *service) writeManifest(ctx context.Context, writer ArtifactWriter, result *BuildResult) error {
	manifest := newBuildManifest(result)
	data, err := manifest.marshal()
	if err != nil {
		return fmt.Errorf("generator: marshal manifest: %w", err)
	}
	return writer.WriteFile(ctx, writeFileRequest{
		Path:        manifestFileName,
		Content:     strings.NewReader(string(data)),
		Size:        int64(len(data)),
		Category:    categoryManifest,
		ContentType: "application/json",
		Checksum:    computeHash(data),
	})
}
