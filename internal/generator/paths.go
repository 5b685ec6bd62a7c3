package generator

import (
	"fmt"
	"path"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/devforge/buildlog/internal/content"
	"github.com/devforge/buildlog/internal/router"
)

const siteRouteGroup = "site"

// renderTarget pairs a view state with the optional facet narrowing applied
// to log list views.
type renderTarget struct {
	State router.ViewState
	Facet content.Facet
}

// Route returns the site-relative location the target is served from.
func (t renderTarget) Route() string {
	if t.State.Kind == router.KindLog && t.Facet != "" && t.Facet != content.FacetAll {
		return "/log/category/" + string(t.Facet) + "/"
	}
	return t.State.Path()
}

// OutputPath maps the target to a file below the output directory. Every
// view gets a directory with an index document so links stay extensionless.
func (t renderTarget) OutputPath() string {
	route := strings.Trim(t.Route(), "/")
	if route == "" {
		return "index.html"
	}
	return path.Join(route, "index.html")
}

// renderTargets enumerates every document a build produces: the five named
// views, one page per post, and optional per-facet log pages.
func (s *service) renderTargets(posts []*content.Post) []renderTarget {
	targets := []renderTarget{
		{State: router.Home()},
		{State: router.Roadmap()},
		{State: router.Skills()},
		{State: router.Log(), Facet: content.FacetAll},
		{State: router.Manifesto()},
	}

	if s.cfg.FacetPages {
		for _, category := range content.Categories() {
			targets = append(targets, renderTarget{
				State: router.Log(),
				Facet: content.FacetFor(category),
			})
		}
	}

	for _, post := range posts {
		targets = append(targets, renderTarget{State: router.PostView(post.Slug)})
	}

	return targets
}

// routeSet builds absolute URLs through a go-urlkit route manager so feed
// and sitemap links always agree with the generated layout.
type routeSet struct {
	manager *urlkit.RouteManager
}

func newRouteSet(baseURL string) *routeSet {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "http://localhost"
	}
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    siteRouteGroup,
				BaseURL: base,
				Paths: map[string]string{
					"home":      "/",
					"roadmap":   "/roadmap/",
					"skills":    "/skills/",
					"log":       "/log/",
					"manifesto": "/manifesto/",
					"post":      "/log/:slug/",
					"facet":     "/log/category/:category/",
				},
			},
		},
	})
	return &routeSet{manager: manager}
}

// AbsoluteURL resolves the canonical URL of a render target.
func (r *routeSet) AbsoluteURL(target renderTarget) (string, error) {
	group := r.manager.Group(siteRouteGroup)

	if target.State.Kind == router.KindPost {
		return group.Builder("post").WithParam("slug", target.State.Slug).Build()
	}
	if target.State.Kind == router.KindLog && target.Facet != "" && target.Facet != content.FacetAll {
		return group.Builder("facet").WithParam("category", string(target.Facet)).Build()
	}

	name := string(target.State.Kind)
	if name == "" {
		name = "home"
	}
	url, err := group.Builder(name).Build()
	if err != nil {
		return "", fmt.Errorf("generator: build url for %s: %w", name, err)
	}
	return url, nil
}

// PostURL resolves the canonical URL of a single post.
func (r *routeSet) PostURL(slug string) (string, error) {
	return r.AbsoluteURL(renderTarget{State: router.PostView(slug)})
}
