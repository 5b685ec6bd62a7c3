package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/devforge/buildlog"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "buildlog: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: buildlog <build|clean|serve> [flags]")
	}

	switch args[0] {
	case "build":
		return runBuild(args[1:])
	case "clean":
		return runClean(args[1:])
	case "serve":
		return runServe(args[1:])
	default:
		return fmt.Errorf("unknown command %q (expected build, clean, or serve)", args[0])
	}
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("buildlog-build", flag.ExitOnError)
	cfgFlags := bindConfigFlags(fs)
	dryRun := fs.Bool("dry-run", false, "Render every page without writing output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := buildlog.New(cfgFlags.config())
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	result, err := module.Build(context.Background(), *dryRun)
	if err != nil {
		return fmt.Errorf("execute build command: %w", err)
	}
	if result != nil {
		fmt.Fprintf(os.Stdout, "built %d pages, %d assets in %s\n",
			result.PagesBuilt, result.AssetsCopied, result.Duration)
	}
	return nil
}

func runClean(args []string) error {
	fs := flag.NewFlagSet("buildlog-clean", flag.ExitOnError)
	cfgFlags := bindConfigFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := buildlog.New(cfgFlags.config())
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if err := module.Clean(context.Background()); err != nil {
		return fmt.Errorf("execute clean command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "output directory cleaned")
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("buildlog-serve", flag.ExitOnError)
	cfgFlags := bindConfigFlags(fs)
	addr := fs.String("addr", defaultAddr(), "Listen address for the preview server")
	watch := fs.Bool("watch", true, "Rebuild when content or profile files change")
	buildFirst := fs.Bool("build", true, "Run a full build before serving")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := cfgFlags.config()
	cfg.Server.Addr = *addr
	cfg.Server.Watch = *watch

	module, err := buildlog.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *buildFirst {
		if _, err := module.Build(ctx, false); err != nil {
			return fmt.Errorf("initial build: %w", err)
		}
	}

	return module.Serve(ctx)
}

// configFlags binds the shared configuration surface onto a flag set.
type configFlags struct {
	contentDir  *string
	pattern     *string
	profile     *string
	outputDir   *string
	baseURL     *string
	staticDir   *string
	facetPages  *bool
	logLevel    *string
	logFormat   *string
	debounceMS  *int
	spaFallback *bool
}

func bindConfigFlags(fs *flag.FlagSet) *configFlags {
	defaults := buildlog.DefaultConfig()
	return &configFlags{
		contentDir:  fs.String("content-dir", defaults.Content.Dir, "Path to the markdown content root"),
		pattern:     fs.String("pattern", defaults.Content.Pattern, "Glob pattern applied when discovering markdown files"),
		profile:     fs.String("profile", defaults.Site.ProfilePath, "Path to the site profile document"),
		outputDir:   fs.String("output-dir", defaults.Generator.OutputDir, "Directory receiving generated pages"),
		baseURL:     fs.String("base-url", defaults.Generator.BaseURL, "Absolute base URL used in sitemap and feeds"),
		staticDir:   fs.String("static-dir", defaults.Generator.StaticDir, "Directory of static assets copied into the output"),
		facetPages:  fs.Bool("facet-pages", defaults.Generator.FacetPages, "Emit per-category log list pages"),
		logLevel:    fs.String("log-level", defaults.Logging.Level, "Logging level (trace, debug, info, warn, error)"),
		logFormat:   fs.String("log-format", defaults.Logging.Format, "Logging format (json, console, pretty)"),
		debounceMS:  fs.Int("debounce-ms", int(defaults.Server.Debounce/time.Millisecond), "Watch debounce window in milliseconds"),
		spaFallback: fs.Bool("spa-fallback", defaults.Server.SPAFallback, "Serve the root document for unknown paths"),
	}
}

func (f *configFlags) config() buildlog.Config {
	cfg := buildlog.DefaultConfig()
	cfg.Content.Dir = *f.contentDir
	cfg.Content.Pattern = *f.pattern
	cfg.Site.ProfilePath = *f.profile
	cfg.Generator.OutputDir = *f.outputDir
	cfg.Generator.BaseURL = *f.baseURL
	cfg.Generator.StaticDir = *f.staticDir
	cfg.Generator.FacetPages = *f.facetPages
	cfg.Logging.Level = *f.logLevel
	cfg.Logging.Format = *f.logFormat
	cfg.Server.Debounce = time.Duration(*f.debounceMS) * time.Millisecond
	cfg.Server.SPAFallback = *f.spaFallback
	return cfg
}

func defaultAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}
