package interfaces

import "time"

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations must be deterministic: rendering the same input twice
// yields byte-identical output, so rendered bodies can be cached on the
// post record for the life of the process.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (SHA-256) so
	// rebuild workflows can detect changes without re-reading unchanged files.
	Checksum []byte
}

// FrontMatter models the metadata block recognised at the top of a build-log
// entry. Dates are kept as zero-padded ISO strings because they are compared
// lexically, never arithmetically. Unknown keys land in Custom.
type FrontMatter struct {
	Slug     string         `yaml:"slug" json:"slug"`
	Title    string         `yaml:"title" json:"title"`
	Excerpt  string         `yaml:"excerpt" json:"excerpt"`
	Date     string         `yaml:"date" json:"date"`
	ReadTime string         `yaml:"read_time" json:"read_time"`
	Category string         `yaml:"category" json:"category"`
	Tags     []string       `yaml:"tags" json:"tags"`
	Custom   map[string]any `yaml:",inline" json:"custom"`
}

// LoadOptions fine-tunes how documents are discovered from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
}
