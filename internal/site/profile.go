// Package site models the static biographical content of the portfolio: the
// author profile, the learning roadmap, the skills matrix, and the manifesto
// copy. The data ships as a YAML manifest next to the content directory and
// degrades to built-in defaults when the manifest is absent.
package site

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/devforge/buildlog/internal/logging"
	"github.com/devforge/buildlog/pkg/interfaces"
)

// Milestone statuses form a closed set mirrored by the roadmap view.
const (
	StatusPlanned = "planned"
	StatusActive  = "active"
	StatusDone    = "done"
)

// Profile is the root of the site manifest.
type Profile struct {
	Title       string       `yaml:"title"`
	Tagline     string       `yaml:"tagline"`
	Description string       `yaml:"description"`
	Author      Author       `yaml:"author"`
	Roadmap     []Milestone  `yaml:"roadmap"`
	Skills      []SkillGroup `yaml:"skills"`
	Manifesto   []string     `yaml:"manifesto"`
}

// Author carries the biographical header content.
type Author struct {
	Name     string            `yaml:"name"`
	Bio      string            `yaml:"bio"`
	Location string            `yaml:"location"`
	Links    map[string]string `yaml:"links"`
}

// Milestone is one phase of the learning roadmap.
type Milestone struct {
	Phase  string   `yaml:"phase"`
	Title  string   `yaml:"title"`
	Status string   `yaml:"status"`
	Items  []string `yaml:"items"`
}

// SkillGroup clusters related skills for the matrix view.
type SkillGroup struct {
	Name   string  `yaml:"name"`
	Skills []Skill `yaml:"skills"`
}

// Skill is a single matrix row; Level is a 0-5 self-assessment.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// Validate checks the closed sets the manifest must respect.
func (p Profile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Roadmap),
		validation.Field(&p.Skills),
	)
}

// Validate ensures milestone statuses stay within the closed set.
func (m Milestone) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Status, validation.In(StatusPlanned, StatusActive, StatusDone)),
	)
}

// Validate bounds skill levels.
func (s Skill) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Level, validation.Min(0), validation.Max(5)),
	)
}

// Load reads the site manifest at path. A missing file degrades to the
// built-in default profile with a log entry, matching the content loader's
// never-crash contract; a malformed or invalid file is an error because the
// manifest, unlike posts, is a single authored artifact.
func Load(path string, logger interfaces.Logger) (*Profile, error) {
	if logger == nil {
		logger = logging.NoOp()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("site manifest missing, using defaults", "path", path)
			profile := DefaultProfile()
			return &profile, nil
		}
		return nil, fmt.Errorf("site: read manifest %s: %w", path, err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("site: parse manifest %s: %w", path, err)
	}

	applyProfileDefaults(&profile)

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("site: invalid manifest %s: %w", path, err)
	}

	return &profile, nil
}

// DefaultProfile returns the fallback content used when no manifest exists.
func DefaultProfile() Profile {
	return Profile{
		Title:   "Build Log",
		Tagline: "learning in public",
		Author: Author{
			Name: "Anonymous",
		},
	}
}

func applyProfileDefaults(profile *Profile) {
	if strings.TrimSpace(profile.Title) == "" {
		profile.Title = DefaultProfile().Title
	}
	for i := range profile.Roadmap {
		if strings.TrimSpace(profile.Roadmap[i].Status) == "" {
			profile.Roadmap[i].Status = StatusPlanned
		}
	}
}
