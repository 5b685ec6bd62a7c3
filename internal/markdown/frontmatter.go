package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/devforge/buildlog/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured front-matter, the Markdown
// body without delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. The body is kept as raw Markdown so
// callers decide when to render.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  meta,
		Body:         body,
		LastModified: modified,
	}, nil
}

type frontMatterEnvelope struct {
	Slug     string         `yaml:"slug"`
	Title    string         `yaml:"title"`
	Excerpt  string         `yaml:"excerpt"`
	Date     string         `yaml:"date"`
	ReadTime string         `yaml:"read_time"`
	Category string         `yaml:"category"`
	Tags     []string       `yaml:"tags"`
	Custom   map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	return interfaces.FrontMatter{
		Slug:     env.Slug,
		Title:    env.Title,
		Excerpt:  env.Excerpt,
		Date:     env.Date,
		ReadTime: env.ReadTime,
		Category: env.Category,
		Tags:     append([]string(nil), env.Tags...),
		Custom:   cloneMap(env.Custom),
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
