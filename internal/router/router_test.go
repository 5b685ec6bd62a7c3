package router

import "testing"

func TestRouterInitialState(t *testing.T) {
	r := New("#roadmap", nil, nil)
	if r.Current() != Roadmap() {
		t.Fatalf("unexpected initial state: %+v", r.Current())
	}

	r = New("", nil, nil)
	if r.Current() != Home() {
		t.Fatalf("expected home for empty fragment, got %+v", r.Current())
	}
}

func TestRouterSetPublishesFragment(t *testing.T) {
	history := NewMemoryHistory()
	r := New("", history, nil)

	r.Set(PostView("my-post"))

	if r.Current() != PostView("my-post") {
		t.Fatalf("unexpected state: %+v", r.Current())
	}
	if history.Current() != "#log/my-post" {
		t.Fatalf("unexpected published fragment: %q", history.Current())
	}
}

func TestRouterNotifiesListenersInOrder(t *testing.T) {
	r := New("", nil, nil)

	var seen []string
	r.Subscribe(func(s ViewState) { seen = append(seen, "first:"+string(s.Kind)) })
	r.Subscribe(func(s ViewState) { seen = append(seen, "second:"+string(s.Kind)) })

	r.Set(Skills())

	if len(seen) != 2 || seen[0] != "first:skills" || seen[1] != "second:skills" {
		t.Fatalf("unexpected notification order: %v", seen)
	}
}

func TestRouterIgnoresOwnEcho(t *testing.T) {
	r := New("", nil, nil)

	notifications := 0
	r.Subscribe(func(ViewState) { notifications++ })

	r.Set(Log())
	if notifications != 1 {
		t.Fatalf("expected 1 notification after Set, got %d", notifications)
	}

	// The address bar echoes the router's own write; it must not re-notify.
	r.HandleFragment("#log")
	if notifications != 1 {
		t.Fatalf("expected echo to be ignored, got %d notifications", notifications)
	}
	if r.Current() != Log() {
		t.Fatalf("unexpected state after echo: %+v", r.Current())
	}

	// A later identical fragment is a genuine external change.
	r.HandleFragment("#log")
	if notifications != 2 {
		t.Fatalf("expected external change to notify, got %d", notifications)
	}
}

func TestRouterHandleFragmentExternalChange(t *testing.T) {
	r := New("", nil, nil)

	r.HandleFragment("#log/some-entry")
	if r.Current() != PostView("some-entry") {
		t.Fatalf("unexpected state: %+v", r.Current())
	}

	r.HandleFragment("#bogus")
	if r.Current() != Home() {
		t.Fatalf("expected fallback to home, got %+v", r.Current())
	}
}

func TestRouterBackNavigation(t *testing.T) {
	history := NewMemoryHistory()
	r := New("", history, nil)

	r.Set(Log())
	r.Set(PostView("entry-one"))

	fragment, ok := history.Back()
	if !ok {
		t.Fatal("expected back navigation to succeed")
	}
	r.HandleFragment(fragment)

	if r.Current() != Log() {
		t.Fatalf("expected log after back, got %+v", r.Current())
	}

	fragment, ok = history.Forward()
	if !ok {
		t.Fatal("expected forward navigation to succeed")
	}
	r.HandleFragment(fragment)

	if r.Current() != PostView("entry-one") {
		t.Fatalf("expected post after forward, got %+v", r.Current())
	}
}

func TestMemoryHistoryPushTruncatesForward(t *testing.T) {
	h := NewMemoryHistory()
	h.Push("#home")
	h.Push("#log")
	h.Push("#skills")

	if _, ok := h.Back(); !ok {
		t.Fatal("Back failed")
	}
	if _, ok := h.Back(); !ok {
		t.Fatal("Back failed")
	}

	h.Push("#manifesto")
	if h.Len() != 2 {
		t.Fatalf("expected forward entries discarded, len = %d", h.Len())
	}
	if h.Current() != "#manifesto" {
		t.Fatalf("unexpected current: %q", h.Current())
	}
	if _, ok := h.Forward(); ok {
		t.Fatal("expected no forward entry after push")
	}
}
