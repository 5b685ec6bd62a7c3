package content

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/devforge/buildlog/internal/logging"
	"github.com/devforge/buildlog/internal/markdown"
	"github.com/devforge/buildlog/pkg/interfaces"
)

// Config controls how the content service discovers and renders entries.
type Config struct {
	BasePath  string
	Pattern   string
	Recursive bool
	Parser    interfaces.ParseOptions
}

// Service translates the content directory into validated, render-ready Post
// records. The service never surfaces a load failure to the caller: a missing
// or unreadable directory degrades to an empty list with a log entry, so the
// page is never crashed over missing content.
type Service struct {
	cfg    Config
	parser interfaces.MarkdownParser
	logger interfaces.Logger
}

// NewService constructs a content service. When parser is nil, a goldmark
// parser using the configured parse options is created.
func NewService(cfg Config, parser interfaces.MarkdownParser, logger interfaces.Logger) *Service {
	if parser == nil {
		parser = markdown.NewGoldmarkParser(cfg.Parser)
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{
		cfg:    cfg,
		parser: parser,
		logger: logger,
	}
}

// LoadAll scans the content directory and returns every valid Post sorted by
// date descending. Entries that fail front-matter validation or rendering are
// skipped and logged; a missing directory yields an empty list, not an error.
func (s *Service) LoadAll(ctx context.Context) ([]*Post, error) {
	basePath := strings.TrimSpace(s.cfg.BasePath)
	if basePath == "" {
		basePath = "."
	}

	if _, err := os.Stat(basePath); err != nil {
		s.logger.Warn("content directory unavailable, serving empty list", "path", basePath, "error", err)
		return []*Post{}, nil
	}

	loader := markdown.NewLoader(os.DirFS(basePath), markdown.LoaderConfig{
		BasePath:  basePath,
		Pattern:   s.cfg.Pattern,
		Recursive: s.cfg.Recursive,
	})

	results, err := loader.LoadDirectory(ctx, ".", markdown.LoadParams{
		OnError: func(path string, err error) {
			logging.WithContentContext(s.logger, path, "").Warn("skipping unreadable entry", "error", err)
		},
	})
	if err != nil {
		s.logger.Warn("content scan failed, serving empty list", "path", basePath, "error", err)
		return []*Post{}, nil
	}

	posts := make([]*Post, 0, len(results))
	for _, result := range results {
		post, err := NewPost(result.Document, s.parser, s.cfg.Parser)
		if err != nil {
			logging.WithContentContext(s.logger, result.Document.FilePath, "").
				Warn("skipping invalid entry", "error", err)
			continue
		}
		posts = append(posts, post)
	}

	SortByDateDesc(posts)

	s.logger.Debug("content loaded", "count", len(posts))
	return posts, nil
}

// GetBySlug performs a full load followed by a linear search by exact slug
// match. The corpus is tens of posts and the lookup happens at most once per
// navigation, so no index is maintained.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	posts, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if post := FindBySlug(posts, slug); post != nil {
		return post, nil
	}
	return nil, ErrPostNotFound
}

// SortByDateDesc orders posts most recent first. String comparison is
// sufficient because dates use zero-padded ISO form; ties keep input order.
func SortByDateDesc(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
}

// FindBySlug returns the first post with the given slug, or nil.
func FindBySlug(posts []*Post, slug string) *Post {
	for _, post := range posts {
		if post.Slug == slug {
			return post
		}
	}
	return nil
}

// Filter returns the posts matching the facet, preserving order. FacetAll
// and unknown facet values pass everything through.
func Filter(posts []*Post, facet Facet) []*Post {
	if facet == FacetAll || !Category(facet).Valid() {
		return posts
	}
	out := make([]*Post, 0, len(posts))
	for _, post := range posts {
		if post.Category == Category(facet) {
			out = append(out, post)
		}
	}
	return out
}

// Neighbors resolves the previous (chronologically newer) and next
// (chronologically older) entries around the post with the given slug in a
// date-descending list. Either pointer is nil at the respective end, and
// both are nil when the slug has no match.
func Neighbors(posts []*Post, slug string) (prev, next *Post) {
	for i, post := range posts {
		if post.Slug != slug {
			continue
		}
		if i > 0 {
			prev = posts[i-1]
		}
		if i < len(posts)-1 {
			next = posts[i+1]
		}
		return prev, next
	}
	return nil, nil
}
