package generator

import (
	"time"

	"github.com/devforge/buildlog/internal/content"
	"github.com/devforge/buildlog/internal/router"
	"github.com/devforge/buildlog/internal/site"
)

// BuildContext carries the immutable inputs shared by every page of a build.
type BuildContext struct {
	GeneratedAt time.Time
	Profile     *site.Profile
	Posts       []*content.Post
}

// facetLink backs the category filter controls on log list views.
type facetLink struct {
	Label  string
	Facet  content.Facet
	Route  string
	Active bool
}

// viewData is the template context for a single rendered page. It embodies
// the derived view selection: the active post resolved by slug (nil when
// absent, which renders no post-detail block), the facet-filtered log list
// in descending date order, and the prev/next neighbors of a post view.
type viewData struct {
	State       router.ViewState
	Facet       content.Facet
	Profile     *site.Profile
	Posts       []*content.Post
	Post        *content.Post
	Prev        *content.Post
	Next        *content.Post
	Facets      []facetLink
	BaseURL     string
	GeneratedAt time.Time
}

func newViewData(buildCtx *BuildContext, target renderTarget, baseURL string) viewData {
	data := viewData{
		State:       target.State,
		Facet:       target.Facet,
		Profile:     buildCtx.Profile,
		Posts:       buildCtx.Posts,
		BaseURL:     baseURL,
		GeneratedAt: buildCtx.GeneratedAt,
	}

	switch target.State.Kind {
	case router.KindPost:
		// Unknown slugs resolve to a nil post: the template renders no
		// detail block, never an error page.
		data.Post = content.FindBySlug(buildCtx.Posts, target.State.Slug)
		if data.Post != nil {
			data.Prev, data.Next = content.Neighbors(buildCtx.Posts, target.State.Slug)
		}
	case router.KindLog:
		facet := target.Facet
		if facet == "" {
			facet = content.FacetAll
		}
		data.Facet = facet
		data.Posts = content.Filter(buildCtx.Posts, facet)
		data.Facets = facetLinks(facet)
	case router.KindHome:
		data.Posts = recentPosts(buildCtx.Posts, 3)
	}

	return data
}

func facetLinks(active content.Facet) []facetLink {
	links := []facetLink{
		{Label: "all", Facet: content.FacetAll, Route: router.Log().Path(), Active: active == content.FacetAll},
	}
	for _, category := range content.Categories() {
		facet := content.FacetFor(category)
		links = append(links, facetLink{
			Label:  string(category),
			Facet:  facet,
			Route:  "/log/category/" + string(category) + "/",
			Active: active == facet,
		})
	}
	return links
}

func recentPosts(posts []*content.Post, limit int) []*content.Post {
	if len(posts) <= limit {
		return posts
	}
	return posts[:limit]
}
