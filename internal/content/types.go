package content

import (
	"time"
)

// Category is the closed set of labels a build-log entry can carry. It is
// used purely for client-side filtering of the log view.
type Category string

const (
	CategoryRust       Category = "rust"
	CategoryBlockchain Category = "blockchain"
	CategoryPersonal   Category = "personal"
)

// DefaultCategory is applied when an entry omits its category.
const DefaultCategory = CategoryPersonal

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{CategoryRust, CategoryBlockchain, CategoryPersonal}
}

// Valid reports whether the category belongs to the closed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryRust, CategoryBlockchain, CategoryPersonal:
		return true
	}
	return false
}

// Facet is an independent filter dimension applied to the log list view. It
// is either FacetAll or one of the category labels, and is deliberately not
// part of the router's view state.
type Facet string

// FacetAll passes every post through the filter.
const FacetAll Facet = "all"

// FacetFor returns the facet selecting exactly the given category.
func FacetFor(c Category) Facet {
	return Facet(c)
}

// Post is a single build-log entry. Records are constructed once per process
// by scanning the content directory and are immutable thereafter; HTML is the
// rendered form of Content as of load time and the two are never mutated
// independently.
type Post struct {
	Slug     string
	Title    string
	Excerpt  string
	Date     string // zero-padded ISO form YYYY-MM-DD; the sole ordering key
	ReadTime string
	Category Category
	Tags     []string
	Content  string
	HTML     string
}

// PublishedAt parses the entry date for consumers that need a real instant
// (feeds, sitemap). The boolean is false when the date does not parse.
func (p *Post) PublishedAt() (time.Time, bool) {
	if p == nil {
		return time.Time{}, false
	}
	ts, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
