package generator

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/devforge/buildlog/internal/router"
)

type renderer struct {
	tmpl *template.Template
}

func newRenderer() (*renderer, error) {
	tmpl := template.New("page").Funcs(template.FuncMap{
		// raw marks pre-rendered markdown HTML as safe. The HTML field is
		// produced once at load time from the entry body and never comes
		// from an untrusted source.
		"raw": func(value string) template.HTML { return template.HTML(value) },
	})

	partials := []string{
		defaultLayout,
		defaultHome,
		defaultRoadmap,
		defaultSkills,
		defaultLog,
		defaultPost,
		defaultManifesto,
	}
	for _, partial := range partials {
		parsed, err := tmpl.Parse(partial)
		if err != nil {
			return nil, fmt.Errorf("generator: parse template: %w", err)
		}
		tmpl = parsed
	}

	return &renderer{tmpl: tmpl}, nil
}

// Render executes the page template for the supplied view data.
func (r *renderer) Render(data viewData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Title composes the document title for the view.
func (d viewData) Title() string {
	base := d.Profile.Title
	switch d.State.Kind {
	case router.KindHome, "":
		return base
	case router.KindPost:
		if d.Post != nil {
			return d.Post.Title + " - " + base
		}
		return base
	default:
		return string(d.State.Kind) + " - " + base
	}
}

// IsHome reports whether the home view is being rendered.
func (d viewData) IsHome() bool { return d.State.Kind == router.KindHome || d.State.Kind == "" }

// IsRoadmap reports whether the roadmap view is being rendered.
func (d viewData) IsRoadmap() bool { return d.State.Kind == router.KindRoadmap }

// IsSkills reports whether the skills view is being rendered.
func (d viewData) IsSkills() bool { return d.State.Kind == router.KindSkills }

// IsLog reports whether the log list view is being rendered.
func (d viewData) IsLog() bool { return d.State.Kind == router.KindLog }

// IsPost reports whether a single-post view is being rendered.
func (d viewData) IsPost() bool { return d.State.Kind == router.KindPost }

// IsManifesto reports whether the manifesto view is being rendered.
func (d viewData) IsManifesto() bool { return d.State.Kind == router.KindManifesto }
