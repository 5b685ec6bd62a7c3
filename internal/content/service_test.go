package content

import (
	"context"
	"errors"
	"testing"
)

func newTestService(tb testing.TB) *Service {
	tb.Helper()
	return NewService(Config{
		BasePath:  "testdata/content",
		Recursive: true,
	}, nil, nil)
}

func TestServiceLoadAll(t *testing.T) {
	svc := newTestService(t)

	posts, err := svc.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	// broken.md and missing-title.md are skipped.
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}

	// Date descending.
	wantOrder := []string{"why-i-build", "lexer-in-rust", "genesis-block"}
	for i, slug := range wantOrder {
		if posts[i].Slug != slug {
			t.Fatalf("position %d: expected %q, got %q", i, slug, posts[i].Slug)
		}
	}
}

func TestServiceLoadAllAppliesDefaults(t *testing.T) {
	svc := newTestService(t)

	posts, err := svc.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	post := FindBySlug(posts, "why-i-build")
	if post == nil {
		t.Fatal("expected why-i-build to load")
	}
	if post.Category != CategoryPersonal {
		t.Fatalf("expected default category, got %q", post.Category)
	}
	if post.ReadTime != DefaultReadTime {
		t.Fatalf("expected default read time, got %q", post.ReadTime)
	}
	if post.Tags == nil || len(post.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", post.Tags)
	}
}

func TestServiceLoadAllRendersHTML(t *testing.T) {
	svc := newTestService(t)

	posts, err := svc.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	post := FindBySlug(posts, "lexer-in-rust")
	if post == nil {
		t.Fatal("expected lexer-in-rust to load")
	}
	if post.HTML == "" {
		t.Fatal("expected rendered html")
	}
	if post.Content == "" {
		t.Fatal("expected raw markdown retained")
	}
}

func TestServiceMissingDirectoryYieldsEmptyList(t *testing.T) {
	svc := NewService(Config{BasePath: "testdata/does-not-exist"}, nil, nil)

	posts, err := svc.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty list, got %d posts", len(posts))
	}
}

func TestServiceGetBySlug(t *testing.T) {
	svc := newTestService(t)

	post, err := svc.GetBySlug(context.Background(), "genesis-block")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if post.Title != "Parsing the Genesis Block" {
		t.Fatalf("unexpected title: %q", post.Title)
	}

	if _, err := svc.GetBySlug(context.Background(), "nope"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestSortByDateDescStable(t *testing.T) {
	posts := []*Post{
		{Slug: "a", Date: "2025-01-01"},
		{Slug: "b", Date: "2025-02-01"},
		{Slug: "c", Date: "2025-01-01"},
	}
	SortByDateDesc(posts)

	if posts[0].Slug != "b" {
		t.Fatalf("expected newest first, got %q", posts[0].Slug)
	}
	// Equal dates keep their input order.
	if posts[1].Slug != "a" || posts[2].Slug != "c" {
		t.Fatalf("expected stable order for ties, got %q, %q", posts[1].Slug, posts[2].Slug)
	}
}

func TestFilter(t *testing.T) {
	posts := []*Post{
		{Slug: "a", Category: CategoryRust},
		{Slug: "b", Category: CategoryBlockchain},
		{Slug: "c", Category: CategoryRust},
	}

	rust := Filter(posts, FacetFor(CategoryRust))
	if len(rust) != 2 || rust[0].Slug != "a" || rust[1].Slug != "c" {
		t.Fatalf("unexpected rust filter result: %+v", rust)
	}

	if all := Filter(posts, FacetAll); len(all) != 3 {
		t.Fatalf("expected facet all to pass everything, got %d", len(all))
	}

	if unknown := Filter(posts, Facet("bogus")); len(unknown) != 3 {
		t.Fatalf("expected unknown facet to pass everything, got %d", len(unknown))
	}
}

func TestNeighbors(t *testing.T) {
	posts := []*Post{
		{Slug: "newest", Date: "2025-03-01"},
		{Slug: "middle", Date: "2025-02-01"},
		{Slug: "oldest", Date: "2025-01-01"},
	}

	prev, next := Neighbors(posts, "middle")
	if prev == nil || prev.Slug != "newest" {
		t.Fatalf("expected prev newest, got %+v", prev)
	}
	if next == nil || next.Slug != "oldest" {
		t.Fatalf("expected next oldest, got %+v", next)
	}

	prev, next = Neighbors(posts, "newest")
	if prev != nil {
		t.Fatalf("expected nil prev at list head, got %+v", prev)
	}
	if next == nil || next.Slug != "middle" {
		t.Fatalf("expected next middle, got %+v", next)
	}

	prev, next = Neighbors(posts, "oldest")
	if next != nil {
		t.Fatalf("expected nil next at list tail, got %+v", next)
	}
	if prev == nil || prev.Slug != "middle" {
		t.Fatalf("expected prev middle, got %+v", prev)
	}

	prev, next = Neighbors(posts, "unknown")
	if prev != nil || next != nil {
		t.Fatal("expected nil neighbors for unknown slug")
	}
}
