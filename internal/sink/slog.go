package sink

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// slogSink is the default Sink, backed by log/slog. Handler selection
// mirrors the teacher application's internal/app/logger.go: a text or
// JSON handler chosen by a format string, level chosen by a level
// string, writing to a caller-supplied io.Writer.
type slogSink struct {
	logger *slog.Logger

	mu       sync.Mutex
	openTags int
}

// NewSlog wraps an existing *slog.Logger as a Sink.
func NewSlog(logger *slog.Logger) Sink {
	return &slogSink{logger: logger}
}

// NewSlogFromConfig builds a Sink the same way the teacher's
// application configures its top-level logger: level and format are
// plain strings (as they'd arrive from flags or env vars), defaulting
// to info/text on anything unrecognized.
func NewSlogFromConfig(levelStr, formatStr string, out io.Writer) Sink {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(formatStr) == "json" {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	return NewSlog(slog.New(handler))
}

func (s *slogSink) Log(line string) { s.logger.Info(line) }

func (s *slogSink) Logf(format string, args ...any) { s.logger.Info(fmt.Sprintf(format, args...)) }

func (s *slogSink) Trace(line string) { s.logger.Debug(line) }

func (s *slogSink) Tracef(format string, args ...any) { s.logger.Debug(fmt.Sprintf(format, args...)) }

func (s *slogSink) TraceError(line string) { s.logger.Error(line) }

func (s *slogSink) TraceLine() { s.logger.Debug(strings.Repeat("-", 60)) }

func (s *slogSink) TraceHeader(line string) { s.logger.Info(line) }

func (s *slogSink) TraceImportant(line string) { s.logger.Warn(line) }

func (s *slogSink) TraceStartTarget(name, description, depString string) {
	s.mu.Lock()
	s.openTags++
	s.mu.Unlock()
	s.logger.Debug("target started", "target", name, "description", description, "deps", depString)
}

func (s *slogSink) TraceEndTarget(name string) {
	s.mu.Lock()
	if s.openTags > 0 {
		s.openTags--
	}
	s.mu.Unlock()
	s.logger.Debug("target finished", "target", name)
}

func (s *slogSink) SendVendorError(msg string) {
	s.logger.Warn("vendor error sink not configured; dropping notification", "message", msg)
}

func (s *slogSink) CloseAllOpenTags() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openTags = 0
}

func (s *slogSink) KillAllCreatedProcesses() {
	// The core never spawns child processes itself (spec §1: out of
	// scope); the default sink has nothing to clean up.
}
