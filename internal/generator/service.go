// Package generator renders every reachable view of the portfolio into a
// static output directory: the five named views, one page per build-log
// entry, optional per-category log pages, plus sitemap, robots, feeds, and a
// build manifest.
package generator

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devforge/buildlog/internal/content"
	"github.com/devforge/buildlog/internal/logging"
	"github.com/devforge/buildlog/internal/router"
	"github.com/devforge/buildlog/internal/site"
	"github.com/devforge/buildlog/pkg/interfaces"
)

var (
	// ErrServiceDisabled is returned when no generator service was wired.
	ErrServiceDisabled = errors.New("generator: service disabled")
	// ErrOutputDirRequired is returned when the configuration names no output directory.
	ErrOutputDirRequired = errors.New("generator: output directory is required")
)

// Service describes the static site generator contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Clean(ctx context.Context) error
}

// Config captures runtime behaviour toggles for the generator.
type Config struct {
	OutputDir        string
	BaseURL          string
	StaticDir        string
	CleanBuild       bool
	CopyAssets       bool
	GenerateSitemap  bool
	GenerateRobots   bool
	GenerateFeeds    bool
	GenerateManifest bool
	// FacetPages emits one log list page per category facet in addition to
	// the unfiltered log view.
	FacetPages bool
}

// PostSource supplies the loaded post list. content.Service satisfies it.
type PostSource interface {
	LoadAll(ctx context.Context) ([]*content.Post, error)
}

// Dependencies wires collaborating services into the generator.
type Dependencies struct {
	Posts   PostSource
	Profile *site.Profile
	Logger  interfaces.Logger
	// Writer overrides artifact persistence; defaults to a filesystem writer
	// rooted at Config.OutputDir.
	Writer ArtifactWriter
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	DryRun bool
}

// RenderedPage reports one generated document.
type RenderedPage struct {
	Route    string
	Output   string
	View     router.ViewState
	Checksum string
	Size     int
}

// RenderDiagnostic captures a non-fatal condition observed during a build.
type RenderDiagnostic struct {
	Route   string
	Message string
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	BuildID      uuid.UUID
	GeneratedAt  time.Time
	Duration     time.Duration
	PagesBuilt   int
	AssetsCopied int
	FeedsBuilt   int
	SitemapBuilt bool
	Rendered     []RenderedPage
	Diagnostics  []RenderDiagnostic
}

type service struct {
	cfg      Config
	posts    PostSource
	profile  *site.Profile
	logger   interfaces.Logger
	writer   ArtifactWriter
	renderer *renderer
	routes   *routeSet
}

// NewService wires a static site generator with the supplied configuration
// and dependencies.
func NewService(cfg Config, deps Dependencies) (Service, error) {
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, ErrOutputDirRequired
	}
	if deps.Posts == nil {
		return nil, errors.New("generator: post source is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	writer := deps.Writer
	if writer == nil {
		writer = NewFSWriter(cfg.OutputDir)
	}

	renderer, err := newRenderer()
	if err != nil {
		return nil, err
	}

	profile := deps.Profile
	if profile == nil {
		fallback := site.DefaultProfile()
		profile = &fallback
	}

	return &service{
		cfg:      cfg,
		posts:    deps.Posts,
		profile:  profile,
		logger:   logger,
		writer:   writer,
		renderer: renderer,
		routes:   newRouteSet(cfg.BaseURL),
	}, nil
}

// NewDisabledService returns a Service that fails all operations with
// ErrServiceDisabled.
func NewDisabledService() Service {
	return disabledService{}
}

type disabledService struct{}

func (disabledService) Build(context.Context, BuildOptions) (*BuildResult, error) {
	return nil, ErrServiceDisabled
}

func (disabledService) Clean(context.Context) error { return ErrServiceDisabled }

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	started := time.Now()

	posts, err := s.posts.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("generator: load posts: %w", err)
	}

	writer := s.writer
	if opts.DryRun {
		writer = noopWriter{}
	}

	if s.cfg.CleanBuild && !opts.DryRun {
		if err := writer.RemoveAll(ctx, "."); err != nil {
			return nil, fmt.Errorf("generator: clean output: %w", err)
		}
	}

	result := &BuildResult{
		BuildID:     uuid.New(),
		GeneratedAt: started.UTC(),
	}

	buildCtx := &BuildContext{
		GeneratedAt: result.GeneratedAt,
		Profile:     s.profile,
		Posts:       posts,
	}

	for _, target := range s.renderTargets(posts) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := s.renderTarget(ctx, writer, buildCtx, target)
		if err != nil {
			return nil, err
		}
		result.Rendered = append(result.Rendered, page)
		result.PagesBuilt++
	}

	if s.cfg.CopyAssets {
		copied, diags, err := s.copyAssets(ctx, writer)
		if err != nil {
			return nil, err
		}
		result.AssetsCopied = copied
		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	if s.cfg.GenerateSitemap {
		if err := s.writeSitemap(ctx, writer, result); err != nil {
			return nil, err
		}
		result.SitemapBuilt = true
	}

	if s.cfg.GenerateRobots {
		if err := s.writeRobots(ctx, writer); err != nil {
			return nil, err
		}
	}

	if s.cfg.GenerateFeeds {
		feeds, err := s.writeFeeds(ctx, writer, buildCtx)
		if err != nil {
			return nil, err
		}
		result.FeedsBuilt = feeds
	}

	if s.cfg.GenerateManifest {
		if err := s.writeManifest(ctx, writer, result); err != nil {
			return nil, err
		}
	}

	result.Duration = time.Since(started)
	s.logger.Info("build complete",
		"build_id", result.BuildID.String(),
		"pages", result.PagesBuilt,
		"assets", result.AssetsCopied,
		"duration", result.Duration.String(),
		"dry_run", opts.DryRun,
	)
	return result, nil
}

func (s *service) Clean(ctx context.Context) error {
	return s.writer.RemoveAll(ctx, ".")
}

// renderTarget renders a single view into its output document.
func (s *service) renderTarget(ctx context.Context, writer ArtifactWriter, buildCtx *BuildContext, target renderTarget) (RenderedPage, error) {
	data := newViewData(buildCtx, target, s.cfg.BaseURL)

	rendered, err := s.renderer.Render(data)
	if err != nil {
		return RenderedPage{}, fmt.Errorf("generator: render %s: %w", target.Route(), err)
	}

	output := target.OutputPath()
	if err := ensureParentDir(ctx, writer, output); err != nil {
		return RenderedPage{}, err
	}

	checksum := computeHash(rendered)
	if err := writer.WriteFile(ctx, writeFileRequest{
		Path:        output,
		Content:     bytes.NewReader(rendered),
		Size:        int64(len(rendered)),
		Category:    categoryPage,
		ContentType: "text/html; charset=utf-8",
		Checksum:    checksum,
	}); err != nil {
		return RenderedPage{}, fmt.Errorf("generator: write %s: %w", output, err)
	}

	return RenderedPage{
		Route:    target.Route(),
		Output:   output,
		View:     target.State,
		Checksum: checksum,
		Size:     len(rendered),
	}, nil
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
