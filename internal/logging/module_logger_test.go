package logging

import (
	"context"
	"testing"

	"github.com/devforge/buildlog/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := map[string]any{}
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

type recordingProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return p.logger
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}

	logger := ContentLogger(provider)

	rec, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected fields logger, got %T", logger)
	}
	if rec.fields["module"] != "buildlog.content" {
		t.Fatalf("unexpected module field: %v", rec.fields)
	}
	if len(provider.requested) != 1 || provider.requested[0] != "buildlog.content" {
		t.Fatalf("unexpected provider requests: %v", provider.requested)
	}
}

func TestModuleLoggerNilProviderIsNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "anything")
	if logger == nil {
		t.Fatal("expected logger")
	}
	// Must be safe to call.
	logger.Info("message", "key", "value")
}

func TestWithContentContext(t *testing.T) {
	logger := WithContentContext(&recordingLogger{}, "content/a.md", "a")

	rec, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected fields logger, got %T", logger)
	}
	if rec.fields["content_path"] != "content/a.md" {
		t.Fatalf("unexpected path field: %v", rec.fields)
	}
	if rec.fields["slug"] != "a" {
		t.Fatalf("unexpected slug field: %v", rec.fields)
	}
}

func TestWithContentContextIgnoresEmptyValues(t *testing.T) {
	base := &recordingLogger{}
	logger := WithContentContext(base, "", " ")
	if logger != interfaces.Logger(base) {
		rec, ok := logger.(*recordingLogger)
		if !ok {
			t.Fatalf("expected recording logger, got %T", logger)
		}
		if len(rec.fields) != 0 {
			t.Fatalf("expected no fields, got %v", rec.fields)
		}
	}
}

func TestNoOpWithFields(t *testing.T) {
	logger := NoOp()
	derived := WithFields(logger, map[string]any{"k": "v"})
	if derived == nil {
		t.Fatal("expected logger")
	}
	derived.Debug("still a no-op")
}
