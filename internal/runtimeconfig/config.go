// Package runtimeconfig holds the module-level configuration surface shared
// by the public facade and the CLI.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrContentDirRequired = errors.New("buildlog config: content directory is required")
var ErrGeneratorOutputDirRequired = errors.New("buildlog config: generator output directory is required")
var ErrGeneratorBaseURLInvalid = errors.New("buildlog config: generator base url must be absolute")
var ErrLoggingLevelInvalid = errors.New("buildlog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("buildlog config: logging format is invalid")
var ErrServerDebounceInvalid = errors.New("buildlog config: server watch debounce must be zero or positive")

// Config aggregates every runtime toggle for the site module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Content   ContentConfig
	Site      SiteConfig
	Markdown  MarkdownConfig
	Generator GeneratorConfig
	Server    ServerConfig
	Logging   LoggingConfig
}

// ContentConfig captures filesystem behaviour for build-log ingestion.
type ContentConfig struct {
	Dir       string
	Pattern   string
	Recursive bool
}

// SiteConfig locates the profile document describing the site owner.
type SiteConfig struct {
	ProfilePath string
}

// MarkdownConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// GeneratorConfig captures behaviour for the static site generator.
type GeneratorConfig struct {
	OutputDir        string
	BaseURL          string
	StaticDir        string
	CleanBuild       bool
	CopyAssets       bool
	GenerateSitemap  bool
	GenerateRobots   bool
	GenerateFeeds    bool
	GenerateManifest bool
	FacetPages       bool
}

// ServerConfig captures preview server behaviour.
type ServerConfig struct {
	Addr        string
	SPAFallback bool
	Watch       bool
	Debounce    time.Duration
}

// LoggingConfig captures options for runtime logging.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a local build-log site.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:       "content",
			Pattern:   "*.md",
			Recursive: true,
		},
		Site: SiteConfig{
			ProfilePath: "site.yaml",
		},
		Markdown: MarkdownConfig{
			HardWraps: true,
		},
		Generator: GeneratorConfig{
			OutputDir:        "dist",
			StaticDir:        "static",
			CleanBuild:       true,
			CopyAssets:       true,
			GenerateSitemap:  true,
			GenerateRobots:   true,
			GenerateFeeds:    true,
			GenerateManifest: true,
			FacetPages:       true,
		},
		Server: ServerConfig{
			Addr:        ":8080",
			SPAFallback: true,
			Debounce:    300 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
		return ErrGeneratorOutputDirRequired
	}
	if base := strings.TrimSpace(cfg.Generator.BaseURL); base != "" {
		if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
			return fmt.Errorf("%w: %s", ErrGeneratorBaseURLInvalid, base)
		}
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	if cfg.Server.Debounce < 0 {
		return ErrServerDebounceInvalid
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
