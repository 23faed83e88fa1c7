package eventlog

import (
	"context"
	"log/slog"
	"sort"
)

// Slog writes events as structured records.
type Slog struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlog logs every event at info level, invariant violations at error
// level.
func NewSlog(logger *slog.Logger) *Slog {
	return &Slog{logger: logger, level: slog.LevelInfo}
}

// WithLevel sets the level used for ordinary events.
func (s *Slog) WithLevel(level slog.Level) *Slog {
	return &Slog{logger: s.logger, level: level}
}

func (s *Slog) Log(e Event) {
	level := s.level
	if e.Kind == InvariantViolation {
		level = slog.LevelError
	}
	if !s.logger.Enabled(context.Background(), level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(e.Fields)+3)
	attrs = append(attrs,
		slog.Int("day", e.Day),
		slog.String("source", e.Source),
		slog.String("kind", string(e.Kind)),
	)
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, e.Fields[k]))
	}
	s.logger.LogAttrs(context.Background(), level, e.Message, attrs...)
}
