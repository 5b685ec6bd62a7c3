package runtimeconfig

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Content.Dir != "content" {
		t.Fatalf("unexpected content dir: %q", cfg.Content.Dir)
	}
	if cfg.Generator.OutputDir != "dist" {
		t.Fatalf("unexpected output dir: %q", cfg.Generator.OutputDir)
	}
	if !cfg.Markdown.HardWraps {
		t.Fatal("expected hard wraps in the default markdown dialect")
	}
}

func TestValidateRequiresContentDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestValidateRequiresOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.OutputDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrGeneratorOutputDirRequired) {
		t.Fatalf("expected ErrGeneratorOutputDirRequired, got %v", err)
	}
}

func TestValidateBaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.BaseURL = "example.com"
	if err := cfg.Validate(); !errors.Is(err, ErrGeneratorBaseURLInvalid) {
		t.Fatalf("expected ErrGeneratorBaseURLInvalid, got %v", err)
	}

	cfg.Generator.BaseURL = "https://example.com"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("absolute url should validate: %v", err)
	}

	cfg.Generator.BaseURL = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty base url should validate: %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "WARN"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("levels are case-insensitive: %v", err)
	}
}

func TestValidateDebounce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Debounce = -time.Second
	if err := cfg.Validate(); !errors.Is(err, ErrServerDebounceInvalid) {
		t.Fatalf("expected ErrServerDebounceInvalid, got %v", err)
	}
}
