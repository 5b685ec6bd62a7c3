package site

import (
	"path/filepath"
	"testing"
)

func TestLoadProfile(t *testing.T) {
	profile, err := Load(filepath.Join("testdata", "site.yaml"), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if profile.Title != "Forge Notes" {
		t.Fatalf("unexpected title: %q", profile.Title)
	}
	if profile.Author.Name != "Dana Veld" {
		t.Fatalf("unexpected author: %q", profile.Author.Name)
	}
	if len(profile.Roadmap) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(profile.Roadmap))
	}
	if len(profile.Skills) != 2 {
		t.Fatalf("expected 2 skill groups, got %d", len(profile.Skills))
	}
	if len(profile.Manifesto) != 2 {
		t.Fatalf("expected 2 manifesto lines, got %d", len(profile.Manifesto))
	}
}

func TestLoadProfileDefaultsMilestoneStatus(t *testing.T) {
	profile, err := Load(filepath.Join("testdata", "site.yaml"), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Phase 3 omits status and must default to planned.
	if got := profile.Roadmap[2].Status; got != StatusPlanned {
		t.Fatalf("expected planned status, got %q", got)
	}
}

func TestLoadProfileMissingFileUsesDefaults(t *testing.T) {
	profile, err := Load(filepath.Join("testdata", "does-not-exist.yaml"), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if profile.Title != DefaultProfile().Title {
		t.Fatalf("expected default profile, got %q", profile.Title)
	}
}

func TestLoadProfileInvalidStatusFails(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "invalid.yaml"), nil); err == nil {
		t.Fatal("expected error for status outside the closed set")
	}
}

func TestSkillLevelBounds(t *testing.T) {
	if err := (Skill{Name: "Rust", Level: 5}).Validate(); err != nil {
		t.Fatalf("level 5 should validate: %v", err)
	}
	if err := (Skill{Name: "Rust", Level: 6}).Validate(); err == nil {
		t.Fatal("level 6 should fail validation")
	}
	if err := (Skill{Name: "Rust", Level: -1}).Validate(); err == nil {
		t.Fatal("negative level should fail validation")
	}
}
