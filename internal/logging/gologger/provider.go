// Package gologger adapts github.com/goliatone/go-logger to the logging
// contracts the buildlog runtime consumes.
package gologger

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/devforge/buildlog/internal/logging"
	"github.com/devforge/buildlog/pkg/interfaces"
)

// Config mirrors the logging section of the runtime configuration.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

var levelNames = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

// Provider hands out named go-logger children and satisfies
// interfaces.LoggerProvider.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds the root go-logger instance. Format must be console,
// json, or pretty; an empty format selects console. Unknown levels fall back
// to the library default rather than failing.
func NewProvider(cfg Config) (*Provider, error) {
	opts := make([]glog.Option, 0, 3)

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		opts = append(opts, glog.WithLoggerTypeConsole())
	case "json":
		opts = append(opts, glog.WithLoggerTypeJSON())
	case "pretty":
		opts = append(opts, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("gologger: unknown format %q", cfg.Format)
	}

	if level, ok := levelNames[strings.ToLower(strings.TrimSpace(cfg.Level))]; ok {
		opts = append(opts, glog.WithLevel(level))
	}
	if cfg.AddSource {
		opts = append(opts, glog.WithAddSource(true))
	}

	root := glog.NewLogger(opts...)
	if focus := trimmedNames(cfg.Focus); len(focus) > 0 {
		root.Focus(focus...)
	}
	return &Provider{root: root}, nil
}

// GetLogger returns a child logger scoped to name, or the root logger when
// name is blank.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return wrap(p.root)
	}
	return wrap(p.root.GetLogger(name))
}

func wrap(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &child{inner: inner}
}

type child struct {
	inner glog.Logger
}

func (c *child) Trace(msg string, args ...any) { c.inner.Trace(msg, args...) }
func (c *child) Debug(msg string, args ...any) { c.inner.Debug(msg, args...) }
func (c *child) Info(msg string, args ...any)  { c.inner.Info(msg, args...) }
func (c *child) Warn(msg string, args ...any)  { c.inner.Warn(msg, args...) }
func (c *child) Error(msg string, args ...any) { c.inner.Error(msg, args...) }
func (c *child) Fatal(msg string, args ...any) { c.inner.Fatal(msg, args...) }

func (c *child) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return c
	}
	if fl, ok := c.inner.(glog.FieldsLogger); ok {
		return wrap(fl.WithFields(maps.Clone(fields)))
	}

	// Fall back to With using deterministic key order.
	keys := slices.Sorted(maps.Keys(fields))
	args := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	if wl, ok := c.inner.(interface{ With(...any) *glog.BaseLogger }); ok {
		return wrap(wl.With(args...))
	}
	return c
}

func (c *child) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return c
	}
	return wrap(c.inner.WithContext(ctx))
}

func trimmedNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
