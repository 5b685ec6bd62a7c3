// Package markdown provides the ingestion primitives for build-log entries:
// a filesystem loader that splits front-matter from body text and a
// goldmark-backed parser that renders the body to HTML.
package markdown
