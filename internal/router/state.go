package router

import "strings"

// Kind names the shape of a view. The set is closed: five parameterless
// views plus the parameterized post view.
type Kind string

const (
	KindHome      Kind = "home"
	KindRoadmap   Kind = "roadmap"
	KindSkills    Kind = "skills"
	KindLog       Kind = "log"
	KindPost      Kind = "post"
	KindManifesto Kind = "manifesto"
)

// ViewState is the tagged union describing what the site currently displays.
// Exactly one variant is active at any time; Slug is meaningful only when
// Kind is KindPost. The slug is not validated against the loaded post list
// at transition time — an unknown slug resolves to an absent post at render
// time, never an error.
type ViewState struct {
	Kind Kind
	Slug string
}

// Home returns the default view state.
func Home() ViewState { return ViewState{Kind: KindHome} }

// Roadmap returns the roadmap view state.
func Roadmap() ViewState { return ViewState{Kind: KindRoadmap} }

// Skills returns the skills matrix view state.
func Skills() ViewState { return ViewState{Kind: KindSkills} }

// Log returns the build-log list view state.
func Log() ViewState { return ViewState{Kind: KindLog} }

// PostView returns the single-post view state for the given slug.
func PostView(slug string) ViewState { return ViewState{Kind: KindPost, Slug: slug} }

// Manifesto returns the manifesto view state.
func Manifesto() ViewState { return ViewState{Kind: KindManifesto} }

// ParseFragment derives a view state from an address fragment. The grammar
// is `#` followed by one of the bare state names, or `log/<slug>`. Empty and
// unrecognized fragments fall back to the home state, never an error.
func ParseFragment(fragment string) ViewState {
	fragment = strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if fragment == "" {
		return Home()
	}

	segments := strings.SplitN(fragment, "/", 2)
	head := segments[0]

	if head == string(KindLog) && len(segments) > 1 && segments[1] != "" {
		return PostView(segments[1])
	}

	switch Kind(head) {
	case KindHome:
		return Home()
	case KindRoadmap:
		return Roadmap()
	case KindSkills:
		return Skills()
	case KindLog:
		return Log()
	case KindManifesto:
		return Manifesto()
	}

	return Home()
}

// Fragment renders the state back to its address fragment. It is the inverse
// of ParseFragment for every reachable state.
func (s ViewState) Fragment() string {
	if s.Kind == KindPost {
		return "#" + string(KindLog) + "/" + s.Slug
	}
	if s.Kind == "" {
		return "#" + string(KindHome)
	}
	return "#" + string(s.Kind)
}

// Path maps the state to the static output location it is generated at.
// The home view lives at the site root; every other view gets a directory
// with an index document so links stay extensionless.
func (s ViewState) Path() string {
	switch s.Kind {
	case KindHome, "":
		return "/"
	case KindPost:
		return "/" + string(KindLog) + "/" + s.Slug + "/"
	default:
		return "/" + string(s.Kind) + "/"
	}
}
