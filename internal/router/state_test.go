package router

import "testing"

func TestParseFragment(t *testing.T) {
	cases := []struct {
		fragment string
		want     ViewState
	}{
		{"", Home()},
		{"#", Home()},
		{"#home", Home()},
		{"home", Home()},
		{"#roadmap", Roadmap()},
		{"#skills", Skills()},
		{"#log", Log()},
		{"#manifesto", Manifesto()},
		{"#log/my-first-post", PostView("my-first-post")},
		{"log/my-first-post", PostView("my-first-post")},
		{"#log/", Log()},
		{"#garbage", Home()},
		{"#log-ish", Home()},
		// Trailing segments after a parameterless state name are ignored.
		{"#roadmap/extra", Roadmap()},
	}

	for _, tc := range cases {
		if got := ParseFragment(tc.fragment); got != tc.want {
			t.Fatalf("ParseFragment(%q) = %+v, want %+v", tc.fragment, got, tc.want)
		}
	}
}

func TestFragmentRoundTrip(t *testing.T) {
	states := []ViewState{
		Home(),
		Roadmap(),
		Skills(),
		Log(),
		Manifesto(),
		PostView("building-a-lexer"),
	}

	for _, state := range states {
		if got := ParseFragment(state.Fragment()); got != state {
			t.Fatalf("round trip %+v -> %q -> %+v", state, state.Fragment(), got)
		}
	}
}

func TestViewStateZeroValueFragment(t *testing.T) {
	var zero ViewState
	if zero.Fragment() != "#home" {
		t.Fatalf("zero state fragment = %q", zero.Fragment())
	}
	if zero.Path() != "/" {
		t.Fatalf("zero state path = %q", zero.Path())
	}
}

func TestViewStatePath(t *testing.T) {
	cases := []struct {
		state ViewState
		want  string
	}{
		{Home(), "/"},
		{Roadmap(), "/roadmap/"},
		{Skills(), "/skills/"},
		{Log(), "/log/"},
		{Manifesto(), "/manifesto/"},
		{PostView("a-post"), "/log/a-post/"},
	}

	for _, tc := range cases {
		if got := tc.state.Path(); got != tc.want {
			t.Fatalf("Path(%+v) = %q, want %q", tc.state, got, tc.want)
		}
	}
}
