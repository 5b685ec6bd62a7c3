package staticcmd

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/devforge/buildlog/internal/commands"
	"github.com/devforge/buildlog/internal/generator"
	"github.com/devforge/buildlog/internal/logging"
	"github.com/devforge/buildlog/pkg/interfaces"
)

var (
	_ command.Commander[BuildSiteCommand] = (*BuildSiteHandler)(nil)
	_ command.Commander[CleanSiteCommand] = (*CleanSiteHandler)(nil)
)

const buildTimeout = 2 * time.Minute

// BuildSiteHandler orchestrates generator builds using the shared command
// handler foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler constructs a handler wired to the provided generator service.
func NewBuildSiteHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if service == nil {
			return generator.ErrServiceDisabled
		}

		if msg.CleanFirst && !msg.DryRun {
			if err := service.Clean(ctx); err != nil {
				return err
			}
		}

		result, err := service.Build(ctx, generator.BuildOptions{DryRun: msg.DryRun})
		if err != nil {
			return err
		}
		invokeCallback(msg.OnResult, ResultEnvelope{
			Reason: msg.Reason,
			Result: result,
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand]("static.build"),
		commands.WithTimeout[BuildSiteCommand](buildTimeout),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CleanSiteHandler clears generator artifacts.
type CleanSiteHandler struct {
	inner *commands.Handler[CleanSiteCommand]
}

// NewCleanSiteHandler constructs a handler that cleans generator output.
func NewCleanSiteHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CleanSiteCommand]) *CleanSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CleanSiteCommand) error {
		if service == nil {
			return generator.ErrServiceDisabled
		}
		return service.Clean(ctx)
	}

	handlerOpts := []commands.HandlerOption[CleanSiteCommand]{
		commands.WithLogger[CleanSiteCommand](baseLogger),
		commands.WithOperation[CleanSiteCommand]("static.clean"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CleanSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CleanSiteCommand].
func (h *CleanSiteHandler) Execute(ctx context.Context, msg CleanSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

func invokeCallback(cb ResultCallback, envelope ResultEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}
