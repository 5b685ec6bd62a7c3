package generator

import (
	"context"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapDocument struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func buildSitemap(baseURL string, pages []RenderedPage, fallback time.Time) string {
	base := baseURLWithFallback(baseURL)

	var lastMod string
	if !fallback.IsZero() {
		lastMod = fallback.UTC().Format(time.RFC3339)
	}

	seen := map[string]struct{}{}
	doc := sitemapDocument{NS: sitemapNamespace, URLs: make([]sitemapURL, 0, len(pages))}
	for _, page := range pages {
		route := strings.TrimSpace(page.Route)
		if !strings.HasPrefix(route, "/") {
			route = "/" + route
		}
		loc := base + route
		if _, dup := seen[loc]; dup {
			continue
		}
		seen[loc] = struct{}{}
		doc.URLs = append(doc.URLs, sitemapURL{Loc: loc, LastMod: lastMod})
	}

	sort.Slice(doc.URLs, func(i, j int) bool {
		return doc.URLs[i].Loc < doc.URLs[j].Loc
	})

	return marshalXML(doc)
}

func buildRobots(baseURL string, includeSitemap bool) string {
	lines := []string{"User-agent: *", "Allow: /"}
	if includeSitemap {
		lines = append(lines, "", fmt.Sprintf("Sitemap: %s/sitemap.xml", baseURLWithFallback(baseURL)))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (s *service) writeSitemap(ctx context.Context, writer ArtifactWriter, result *BuildResult) error {
	content := buildSitemap(s.cfg.BaseURL, result.Rendered, result.GeneratedAt)
	return writer.WriteFile(ctx, writeFileRequest{
		Path:        "sitemap.xml",
		Content:     strings.NewReader(content),
		Size:        int64(len(content)),
		Category:    categorySitemap,
		ContentType: "application/xml",
		Checksum:    computeHash([]byte(content)),
	})
}

func (s *service) writeRobots(ctx context.Context, writer ArtifactWriter) error {
	content := buildRobots(s.cfg.BaseURL, s.cfg.GenerateSitemap)
	return writer.WriteFile(ctx, writeFileRequest{
		Path:        "robots.txt",
		Content:     strings.NewReader(content),
		Size:        int64(len(content)),
		Category:    categoryRobots,
		ContentType: "text/plain",
		Checksum:    computeHash([]byte(content)),
	})
}
