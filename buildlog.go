// Package buildlog assembles a markdown-driven personal build-log site: a
// content pipeline over frontmatter posts, a hash-fragment view-state router,
// a static site generator, and a local preview server.
package buildlog

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	staticcmd "github.com/devforge/buildlog/internal/commands/static"
	"github.com/devforge/buildlog/internal/content"
	"github.com/devforge/buildlog/internal/di"
	"github.com/devforge/buildlog/internal/generator"
	"github.com/devforge/buildlog/internal/logging"
	"github.com/devforge/buildlog/internal/router"
	"github.com/devforge/buildlog/internal/server"
	"github.com/devforge/buildlog/internal/site"
	"github.com/devforge/buildlog/pkg/interfaces"
)

// ContentService exports the content service for consumers of the buildlog package.
type ContentService = *content.Service

// GeneratorService exports the static site generator contract.
type GeneratorService = generator.Service

// ViewRouter exports the view-state router.
type ViewRouter = *router.Router

// ViewState exports the router's canonical view descriptor.
type ViewState = router.ViewState

// Post exports the build-log entry model.
type Post = content.Post

// Profile exports the site owner profile model.
type Profile = site.Profile

// BuildResult exports generator build metadata.
type BuildResult = generator.BuildResult

// BuildSiteCommand exports the build command message.
type BuildSiteCommand = staticcmd.BuildSiteCommand

// Home returns the default view state.
func Home() ViewState { return router.Home() }

// PostView returns the single-post view state for the given slug.
func PostView(slug string) ViewState { return router.PostView(slug) }

// ParseFragment derives a view state from an address fragment, falling back
// to the home state for anything unrecognized.
func ParseFragment(fragment string) ViewState { return router.ParseFragment(fragment) }

// Module represents the top level site runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a site module using the provided configuration and optional
// DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Content returns the configured content service.
func (m *Module) Content() ContentService {
	return m.container.ContentService()
}

// Generator returns the configured static site generator.
func (m *Module) Generator() (GeneratorService, error) {
	return m.container.GeneratorService()
}

// Router returns the view-state router seeded at the home view.
func (m *Module) Router() ViewRouter {
	return m.container.Router()
}

// Profile returns the loaded site owner profile.
func (m *Module) Profile() *Profile {
	return m.container.Profile()
}

// Logger returns a module-scoped logger from the configured provider.
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.container.LoggerProvider(), name)
}

// Build renders the whole site through the build command pipeline and returns
// the result.
func (m *Module) Build(ctx context.Context, dryRun bool) (*BuildResult, error) {
	builder, err := m.container.BuildCommand()
	if err != nil {
		return nil, err
	}

	var result *BuildResult
	cmd := BuildSiteCommand{
		DryRun: dryRun,
		Reason: "api",
		OnResult: func(envelope staticcmd.ResultEnvelope) {
			result = envelope.Result
		},
	}
	if err := builder.Execute(ctx, cmd); err != nil {
		return nil, err
	}
	return result, nil
}

// Clean removes all generated artifacts.
func (m *Module) Clean(ctx context.Context) error {
	cleaner, err := m.container.CleanCommand()
	if err != nil {
		return err
	}
	return cleaner.Execute(ctx, staticcmd.CleanSiteCommand{Reason: "api"})
}

// Serve hosts the generated site locally until the context is cancelled. When
// watch mode is enabled, content and profile changes trigger rebuilds.
func (m *Module) Serve(ctx context.Context) error {
	cfg := m.container.Config
	logger := logging.ServerLogger(m.container.LoggerProvider())

	srv, err := server.New(server.Config{
		Addr:        cfg.Server.Addr,
		OutputDir:   cfg.Generator.OutputDir,
		SPAFallback: cfg.Server.SPAFallback,
	}, logger)
	if err != nil {
		return err
	}

	if !cfg.Server.Watch {
		return srv.Start(ctx)
	}

	builder, err := m.container.BuildCommand()
	if err != nil {
		return err
	}
	watcher, err := server.NewWatcher(server.WatchConfig{
		Paths:    watchPaths(cfg),
		Debounce: cfg.Server.Debounce,
	}, builder, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() { errCh <- srv.Start(ctx) }()
	go func() { errCh <- watcher.Run(ctx) }()

	err = <-errCh
	cancel()
	<-errCh
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Commands returns the shared command handlers for host applications that
// dispatch through their own command bus.
func (m *Module) Commands() (command.Commander[staticcmd.BuildSiteCommand], command.Commander[staticcmd.CleanSiteCommand], error) {
	builder, err := m.container.BuildCommand()
	if err != nil {
		return nil, nil, err
	}
	cleaner, err := m.container.CleanCommand()
	if err != nil {
		return nil, nil, err
	}
	return builder, cleaner, nil
}

func watchPaths(cfg Config) []string {
	paths := []string{cfg.Content.Dir}
	if cfg.Site.ProfilePath != "" {
		paths = append(paths, cfg.Site.ProfilePath)
	}
	if cfg.Generator.StaticDir != "" {
		paths = append(paths, cfg.Generator.StaticDir)
	}
	return paths
}
