// Package sloglogger adapts a *slog.Logger to the spec.Logger capability
// consumed by sessions and managers.
package sloglogger

import (
	"context"
	"log/slog"

	"github.com/flexigpt/assethost-go/spec"
)

// Logger forwards capability log calls to a slog.Logger, mapping the
// manager-facing severity scale onto slog levels.
type Logger struct {
	l *slog.Logger
}

var _ spec.Logger = (*Logger)(nil)

// New wraps l; a nil l uses slog.Default().
func New(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{l: l}
}

func (x *Logger) Log(severity spec.Severity, message string) {
	x.l.LogAttrs(context.Background(), Level(severity), message,
		slog.String("severity", severity.String()))
}

// Level maps a capability severity to a slog level. DebugAPI sits below
// slog's debug, critical above its error, so handlers can filter on the
// full scale.
func Level(severity spec.Severity) slog.Level {
	switch severity {
	case spec.SeverityDebugAPI:
		return slog.LevelDebug - 4
	case spec.SeverityDebug:
		return slog.LevelDebug
	case spec.SeverityInfo, spec.SeverityProgress:
		return slog.LevelInfo
	case spec.SeverityWarning:
		return slog.LevelWarn
	case spec.SeverityError:
		return slog.LevelError
	case spec.SeverityCritical:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}
