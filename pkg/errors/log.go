package errors

import (
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is a Handler that logs errors to stderr via zerolog.
type LogHandler struct {
	log zerolog.Logger
	// Verbose enables detailed output including timestamps.
	Verbose bool
}

// NewLogHandler creates a LogHandler writing to stderr.
func NewLogHandler(verbose bool) *LogHandler {
	return &LogHandler{
		log:     zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
		Verbose: verbose,
	}
}

// HandleBindError logs a BindError to stderr.
func (h *LogHandler) HandleBindError(err *BindError) {
	if err == nil {
		return
	}
	ev := h.log.Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String()).
		Str("element", err.Element).
		Str("property", err.Property)
	if err.Suggestion != "" {
		ev = ev.Str("suggestion", err.Suggestion)
	}
	if h.Verbose && !err.Timestamp.IsZero() {
		ev = ev.Time("at", err.Timestamp)
	}
	if err.Err != nil {
		ev = ev.Err(err.Err)
	}
	ev.Msg("binding configuration error")
}
