// Package di wires module dependencies behind lazily constructed accessors so
// the public facade stays thin.
package di

import (
	"fmt"
	"sync"

	command "github.com/goliatone/go-command"

	staticcmd "github.com/devforge/buildlog/internal/commands/static"
	"github.com/devforge/buildlog/internal/content"
	"github.com/devforge/buildlog/internal/generator"
	"github.com/devforge/buildlog/internal/logging"
	"github.com/devforge/buildlog/internal/logging/gologger"
	"github.com/devforge/buildlog/internal/markdown"
	"github.com/devforge/buildlog/internal/router"
	"github.com/devforge/buildlog/internal/runtimeconfig"
	"github.com/devforge/buildlog/internal/site"
	"github.com/devforge/buildlog/pkg/interfaces"
)

// Container wires module dependencies from a validated configuration.
type Container struct {
	Config runtimeconfig.Config

	provider interfaces.LoggerProvider
	parser   interfaces.MarkdownParser
	writer   generator.ArtifactWriter
	profile  *site.Profile

	mu         sync.Mutex
	contentSvc *content.Service
	genSvc     generator.Service
	viewRouter *router.Router
	buildCmd   command.Commander[staticcmd.BuildSiteCommand]
	cleanCmd   command.Commander[staticcmd.CleanSiteCommand]
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the default gologger-backed provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.provider = provider
	}
}

// WithMarkdownParser overrides the default goldmark parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.parser = parser
	}
}

// WithArtifactWriter overrides generator output persistence, mainly for tests.
func WithArtifactWriter(writer generator.ArtifactWriter) Option {
	return func(c *Container) {
		c.writer = writer
	}
}

// WithProfile injects a pre-loaded site profile, skipping the profile file.
func WithProfile(profile *site.Profile) Option {
	return func(c *Container) {
		c.profile = profile
	}
}

// NewContainer validates the configuration and resolves eager dependencies
// (logger provider, markdown parser, site profile). Services are built on
// first use.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, fmt.Errorf("di: logger provider: %w", err)
		}
		c.provider = provider
	}

	if c.parser == nil {
		c.parser = markdown.NewGoldmarkParser(parseOptions(cfg.Markdown))
	}

	if c.profile == nil {
		profile, err := site.Load(cfg.Site.ProfilePath, logging.SiteLogger(c.provider))
		if err != nil {
			return nil, fmt.Errorf("di: site profile: %w", err)
		}
		c.profile = profile
	}

	return c, nil
}

// LoggerProvider exposes the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.provider
}

// MarkdownParser exposes the configured markdown parser.
func (c *Container) MarkdownParser() interfaces.MarkdownParser {
	return c.parser
}

// Profile exposes the loaded site profile.
func (c *Container) Profile() *site.Profile {
	return c.profile
}

// ContentService returns the build-log content service.
func (c *Container) ContentService() *content.Service {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contentServiceLocked()
}

// GeneratorService returns the static site generator.
func (c *Container) GeneratorService() (generator.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.genSvc == nil {
		svc, err := generator.NewService(generator.Config{
			OutputDir:        c.Config.Generator.OutputDir,
			BaseURL:          c.Config.Generator.BaseURL,
			StaticDir:        c.Config.Generator.StaticDir,
			CleanBuild:       c.Config.Generator.CleanBuild,
			CopyAssets:       c.Config.Generator.CopyAssets,
			GenerateSitemap:  c.Config.Generator.GenerateSitemap,
			GenerateRobots:   c.Config.Generator.GenerateRobots,
			GenerateFeeds:    c.Config.Generator.GenerateFeeds,
			GenerateManifest: c.Config.Generator.GenerateManifest,
			FacetPages:       c.Config.Generator.FacetPages,
		}, generator.Dependencies{
			Posts:   c.contentServiceLocked(),
			Profile: c.profile,
			Logger:  logging.GeneratorLogger(c.provider),
			Writer:  c.writer,
		})
		if err != nil {
			return nil, err
		}
		c.genSvc = svc
	}
	return c.genSvc, nil
}

// Router returns the view-state router seeded at the home view.
func (c *Container) Router() *router.Router {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.viewRouter == nil {
		c.viewRouter = router.New("", router.NewMemoryHistory(), logging.RouterLogger(c.provider))
	}
	return c.viewRouter
}

// BuildCommand returns the shared build-site command handler.
func (c *Container) BuildCommand() (command.Commander[staticcmd.BuildSiteCommand], error) {
	svc, err := c.GeneratorService()
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buildCmd == nil {
		c.buildCmd = staticcmd.NewBuildSiteHandler(svc, logging.GeneratorLogger(c.provider))
	}
	return c.buildCmd, nil
}

// CleanCommand returns the shared clean-site command handler.
func (c *Container) CleanCommand() (command.Commander[staticcmd.CleanSiteCommand], error) {
	svc, err := c.GeneratorService()
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleanCmd == nil {
		c.cleanCmd = staticcmd.NewCleanSiteHandler(svc, logging.GeneratorLogger(c.provider))
	}
	return c.cleanCmd, nil
}

// contentServiceLocked builds the content service while already holding mu.
// The markdown options travel alongside the parser: the service renders
// through ParseWithOptions, so dropping them here would silence the
// configured dialect.
func (c *Container) contentServiceLocked() *content.Service {
	if c.contentSvc == nil {
		c.contentSvc = content.NewService(content.Config{
			BasePath:  c.Config.Content.Dir,
			Pattern:   c.Config.Content.Pattern,
			Recursive: c.Config.Content.Recursive,
			Parser:    parseOptions(c.Config.Markdown),
		}, c.parser, logging.ContentLogger(c.provider))
	}
	return c.contentSvc
}

func parseOptions(cfg runtimeconfig.MarkdownConfig) interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: cfg.Extensions,
		Sanitize:   cfg.Sanitize,
		HardWraps:  cfg.HardWraps,
		SafeMode:   cfg.SafeMode,
	}
}
