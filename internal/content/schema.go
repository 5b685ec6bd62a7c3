package content

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	slug "github.com/goliatone/go-slug"

	"github.com/devforge/buildlog/pkg/interfaces"
)

// DefaultReadTime is the placeholder shown when an entry omits read_time.
// Read times are free-form display strings, never computed.
const DefaultReadTime = "5 min read"

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// postSchema is the validated shape of an entry's front-matter after
// defaults have been applied. Validation fails closed: an entry that cannot
// be coerced is skipped by the service, logged, and never reaches the model.
type postSchema struct {
	Slug     string
	Title    string
	Excerpt  string
	Date     string
	ReadTime string
	Category string
	Tags     []string
}

func (s postSchema) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required.Error(ErrTitleRequired.Error())),
		validation.Field(&s.Date,
			validation.Required.Error(ErrDateInvalid.Error()),
			validation.Match(isoDatePattern).Error(ErrDateInvalid.Error()),
		),
		validation.Field(&s.Category,
			validation.In(string(CategoryRust), string(CategoryBlockchain), string(CategoryPersonal)).
				Error(ErrCategoryInvalid.Error()),
		),
	)
}

// NewPost normalizes a loaded document into a Post: missing optional
// front-matter fields receive explicit defaults, the schema is validated,
// and the body is rendered to HTML exactly once.
func NewPost(doc *interfaces.Document, parser interfaces.MarkdownParser, opts interfaces.ParseOptions) (*Post, error) {
	if doc == nil {
		return nil, ErrDocumentRequired
	}
	if parser == nil {
		return nil, fmt.Errorf("content: markdown parser is required")
	}

	schema, err := applyDefaults(doc)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("content: invalid front-matter in %s: %w", doc.FilePath, err)
	}

	html, err := parser.ParseWithOptions(doc.Body, opts)
	if err != nil {
		return nil, fmt.Errorf("content: render %s: %w", doc.FilePath, err)
	}

	return &Post{
		Slug:     schema.Slug,
		Title:    schema.Title,
		Excerpt:  schema.Excerpt,
		Date:     schema.Date,
		ReadTime: schema.ReadTime,
		Category: Category(schema.Category),
		Tags:     schema.Tags,
		Content:  string(doc.Body),
		HTML:     string(html),
	}, nil
}

func applyDefaults(doc *interfaces.Document) (postSchema, error) {
	meta := doc.FrontMatter

	out := postSchema{
		Slug:     strings.TrimSpace(meta.Slug),
		Title:    strings.TrimSpace(meta.Title),
		Excerpt:  strings.TrimSpace(meta.Excerpt),
		Date:     strings.TrimSpace(meta.Date),
		ReadTime: strings.TrimSpace(meta.ReadTime),
		Category: strings.TrimSpace(strings.ToLower(meta.Category)),
	}

	if out.Slug == "" {
		normalized, err := slug.Normalize(fileStem(doc.FilePath))
		if err != nil {
			return postSchema{}, fmt.Errorf("%w: %s", ErrSlugInvalid, doc.FilePath)
		}
		out.Slug = normalized
	} else if !slug.IsValid(out.Slug) {
		normalized, err := slug.Normalize(out.Slug)
		if err != nil {
			return postSchema{}, fmt.Errorf("%w: %q", ErrSlugInvalid, out.Slug)
		}
		out.Slug = normalized
	}

	if out.ReadTime == "" {
		out.ReadTime = DefaultReadTime
	}
	if out.Category == "" {
		out.Category = string(DefaultCategory)
	}

	// Tags default to an empty sequence, never nil, preserving input order.
	out.Tags = append([]string{}, meta.Tags...)

	return out, nil
}

func fileStem(filePath string) string {
	base := path.Base(filePath)
	return strings.TrimSuffix(base, path.Ext(base))
}
