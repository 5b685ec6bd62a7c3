// Package commands carries the shared execution plumbing for the build and
// clean handlers: message validation, per-run deadlines, structured logging,
// and categorised error wrapping on top of go-command's Commander contract.
package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/devforge/buildlog/internal/logging"
	"github.com/devforge/buildlog/pkg/interfaces"
)

// DefaultTimeout bounds a single command run unless WithTimeout overrides it.
const DefaultTimeout = 30 * time.Second

// Handler adapts a command function to command.Commander[T] and layers the
// shared concerns around every run.
type Handler[T command.Message] struct {
	run       command.CommandFunc[T]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
}

// HandlerOption configures a Handler.
type HandlerOption[T command.Message] func(*Handler[T])

// WithTimeout replaces the default run deadline. Zero or negative disables
// the deadline entirely.
func WithTimeout[T command.Message](d time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if d < 0 {
			d = 0
		}
		h.timeout = d
	}
}

// WithLogger attaches the run logger. Passing nil restores the no-op default.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger == nil {
			logger = logging.NoOp()
		}
		h.logger = logger
	}
}

// WithOperation names the operation carried on every log entry the handler
// emits.
func WithOperation[T command.Message](name string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = name
	}
}

// NewHandler wraps fn. A nil fn panics since the handler could never run.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: nil command function")
	}
	h := &Handler[T]{
		run:     fn,
		logger:  logging.NoOp(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute implements command.Commander[T]. Validation runs before any
// deadline is armed so a rejected message never consumes its budget.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	logger := h.runLogger(msg)
	logger.Debug("command started")

	if err := h.run(ctx, msg); err != nil {
		logger.Error("command failed", "error", err)
		return wrapExecuteError(err)
	}
	if err := ctx.Err(); err != nil {
		logger.Error("command interrupted", "error", err)
		return wrapContextError(err)
	}

	logger.Info("command finished")
	return nil
}

func (h *Handler[T]) runLogger(msg T) interfaces.Logger {
	fields := map[string]any{
		"command": command.GetMessageType(msg),
	}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	return logging.WithFields(h.logger, fields)
}
