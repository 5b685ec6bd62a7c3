package generator

import (
	"context"
	"encoding/xml"
	"strings"
	"time"
)

const (
	maxFeedItems  = 50
	atomNamespace = "http://www.w3.org/2005/Atom"
)

type feedItem struct {
	Title       string
	Summary     string
	Link        string
	GUID        string
	PublishedAt time.Time
}

func (s *service) buildFeedItems(buildCtx *BuildContext) []feedItem {
	if buildCtx == nil || len(buildCtx.Posts) == 0 {
		return nil
	}

	items := make([]feedItem, 0, len(buildCtx.Posts))
	for _, post := range buildCtx.Posts {
		link, err := s.routes.PostURL(post.Slug)
		if err != nil {
			s.logger.Warn("skipping feed item with unresolvable url", "slug", post.Slug, "error", err)
			continue
		}

		published, ok := post.PublishedAt()
		if !ok {
			published = buildCtx.GeneratedAt
		}

		items = append(items, feedItem{
			Title:       post.Title,
			Summary:     normalizeWhitespace(post.Excerpt),
			Link:        link,
			GUID:        link,
			PublishedAt: published,
		})
		if len(items) == maxFeedItems {
			break
		}
	}
	return items
}

func (s *service) writeFeeds(ctx context.Context, writer ArtifactWriter, buildCtx *BuildContext) (int, error) {
	items := s.buildFeedItems(buildCtx)
	if len(items) == 0 {
		return 0, nil
	}

	feeds := []struct {
		path        string
		contentType string
		body        string
	}{
		{"feed.xml", "application/rss+xml", buildRSSFeed(s.profileMeta(), s.cfg.BaseURL, items, buildCtx.GeneratedAt)},
		{"feed.atom.xml", "application/atom+xml", buildAtomFeed(s.profileMeta(), s.cfg.BaseURL, items, buildCtx.GeneratedAt)},
	}

	written := 0
	for _, feed := range feeds {
		err := writer.WriteFile(ctx, writeFileRequest{
			Path:        feed.path,
			Content:     strings.NewReader(feed.body),
			Size:        int64(len(feed.body)),
			Category:    categoryFeed,
			ContentType: feed.contentType,
			Checksum:    computeHash([]byte(feed.body)),
		})
		if err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

type feedMeta struct {
	Title       string
	Description string
}

func (s *service) profileMeta() feedMeta {
	meta := feedMeta{Title: "Build Log", Description: "Latest entries"}
	if s.profile != nil {
		if title := strings.TrimSpace(s.profile.Title); title != "" {
			meta.Title = title
		}
		if desc := strings.TrimSpace(s.profile.Description); desc != "" {
			meta.Description = desc
		}
	}
	return meta
}

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description,omitempty"`
}

func buildRSSFeed(meta feedMeta, baseURL string, items []feedItem, generatedAt time.Time) string {
	doc := rssDocument{
		Version: "2.0",
		Channel: rssChannel{
			Title:         meta.Title,
			Link:          baseURLWithFallback(baseURL),
			Description:   meta.Description,
			LastBuildDate: generatedAt.UTC().Format(time.RFC1123Z),
			Items:         make([]rssItem, 0, len(items)),
		},
	}
	for _, item := range items {
		doc.Channel.Items = append(doc.Channel.Items, rssItem{
			Title:       item.Title,
			Link:        item.Link,
			GUID:        item.GUID,
			PubDate:     item.PublishedAt.UTC().Format(time.RFC1123Z),
			Description: item.Summary,
		})
	}
	return marshalXML(doc)
}

type atomDocument struct {
	XMLName xml.Name    `xml:"feed"`
	NS      string      `xml:"xmlns,attr"`
	ID      string      `xml:"id"`
	Title   string      `xml:"title"`
	Updated string      `xml:"updated"`
	Links   []atomLink  `xml:"link"`
	Entries []atomEntry `xml:"entry"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr,omitempty"`
	Href string `xml:"href,attr"`
}

type atomEntry struct {
	ID        string   `xml:"id"`
	Title     string   `xml:"title"`
	Link      atomLink `xml:"link"`
	Updated   string   `xml:"updated"`
	Published string   `xml:"published"`
	Summary   string   `xml:"summary,omitempty"`
}

func buildAtomFeed(meta feedMeta, baseURL string, items []feedItem, generatedAt time.Time) string {
	baseLink := baseURLWithFallback(baseURL)
	feedID := baseLink + "/feed.atom.xml"

	doc := atomDocument{
		NS:      atomNamespace,
		ID:      feedID,
		Title:   meta.Title,
		Updated: generatedAt.UTC().Format(time.RFC3339),
		Links: []atomLink{
			{Rel: "alternate", Href: baseLink},
			{Rel: "self", Href: feedID},
		},
		Entries: make([]atomEntry, 0, len(items)),
	}
	for _, item := range items {
		stamp := item.PublishedAt.UTC().Format(time.RFC3339)
		doc.Entries = append(doc.Entries, atomEntry{
			ID:        item.GUID,
			Title:     item.Title,
			Link:      atomLink{Href: item.Link},
			Updated:   stamp,
			Published: stamp,
			Summary:   item.Summary,
		})
	}
	return marshalXML(doc)
}

func marshalXML(doc any) string {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		// Only reachable with unmarshalable field types, which the fixed
		// document structs above cannot produce.
		return ""
	}
	return xml.Header + string(out) + "\n"
}

func baseURLWithFallback(base string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
	if trimmed == "" {
		return "http://localhost"
	}
	return trimmed
}

func normalizeWhitespace(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return strings.Join(strings.Fields(input), " ")
}
