// Package staticcmd exposes command messages and handlers for static site
// builds so CLI entry points and watch loops share one execution path.
package staticcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/devforge/buildlog/internal/generator"
)

// BuildSiteCommand requests a full static render of the site.
type BuildSiteCommand struct {
	// DryRun renders every page without persisting artifacts.
	DryRun bool `json:"dry_run"`
	// CleanFirst clears the output directory before rendering.
	CleanFirst bool `json:"clean_first"`
	// Reason is an optional free-form trigger description ("cli", "watch").
	Reason string `json:"reason,omitempty"`
	// OnResult receives the build result when the run succeeds.
	OnResult ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return "buildlog.static.build" }

// Validate implements command validation for BuildSiteCommand.
func (c BuildSiteCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Reason, validation.Length(0, 128)),
	)
}

// CleanSiteCommand removes all previously generated artifacts.
type CleanSiteCommand struct {
	Reason string `json:"reason,omitempty"`
}

// Type implements command.Message.
func (CleanSiteCommand) Type() string { return "buildlog.static.clean" }

// Validate implements command validation for CleanSiteCommand.
func (c CleanSiteCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Reason, validation.Length(0, 128)),
	)
}

// ResultCallback delivers the outcome of a build to the caller.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope carries the generator result alongside the trigger reason.
type ResultEnvelope struct {
	Reason string
	Result *generator.BuildResult
}
