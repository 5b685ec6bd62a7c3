package logging

import (
	"maps"

	"github.com/devforge/buildlog/pkg/interfaces"
)

// WithFields returns a logger carrying the given fields on every entry when
// the implementation supports the FieldsLogger extension, and the logger
// unchanged otherwise. Nil loggers and empty field maps pass through.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	fl, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	return fl.WithFields(maps.Clone(fields))
}
