package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/devforge/buildlog/pkg/interfaces"
)

// GoldmarkParser implements interfaces.MarkdownParser on the goldmark
// engine. It holds no mutable state, so one instance serves every build
// without locking.
type GoldmarkParser struct {
	defaults interfaces.ParseOptions
}

// NewGoldmarkParser constructs a parser whose zero-option calls use the given
// defaults. The build-log dialect enables tables, autolinking, and hard wraps
// so single newlines become <br> tags.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{defaults: defaults}
}

// Parse renders Markdown into HTML with the parser's default options.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	return p.ParseWithOptions(markdown, p.defaults)
}

// ParseWithOptions renders Markdown into HTML with per-call options.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := buildEngine(opts).Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown parse: %w", err)
	}
	return buf.Bytes(), nil
}

func buildEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	engineOpts := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}

	var renderOpts []renderer.Option
	if opts.HardWraps {
		renderOpts = append(renderOpts, html.WithHardWraps())
	}
	// SafeMode and Sanitize both mean raw HTML in the source is dropped.
	if !opts.SafeMode && !opts.Sanitize {
		renderOpts = append(renderOpts, html.WithUnsafe())
	}
	if len(renderOpts) > 0 {
		engineOpts = append(engineOpts, goldmark.WithRendererOptions(renderOpts...))
	}

	if exts := resolveExtensions(opts.Extensions); len(exts) > 0 {
		engineOpts = append(engineOpts, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOpts...)
}

// defaultExtensions back zero-config parsing: enough for entry bodies that
// use tables and bare URLs.
var defaultExtensions = []goldmark.Extender{
	extension.Table,
	extension.Linkify,
}

var extensionsByName = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// resolveExtensions maps names onto goldmark extenders, dropping duplicates
// and anything unrecognized.
func resolveExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return defaultExtensions
	}

	seen := make(map[string]struct{}, len(names))
	out := make([]goldmark.Extender, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if ext, ok := extensionsByName[key]; ok {
			out = append(out, ext)
		}
	}
	return out
}
