package port

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with port-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCodec adds a codec field to the logger.
func (l *Logger) WithCodec(c Compression) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", c.String()),
	}
}

// LogCapabilities logs the capability snapshot a Platform selected.
func (l *Logger) LogCapabilities(ctx context.Context, caps Capabilities) {
	codecs := make([]string, 0, len(caps.Codecs))
	for _, c := range caps.Codecs {
		codecs = append(codecs, c.String())
	}
	l.InfoContext(ctx, "platform capabilities selected",
		"crc32c", caps.CRC32C,
		"crc32c_accelerated", caps.CRC32CAccelerated,
		"codecs", codecs,
		"little_endian", caps.LittleEndian,
	)
}

// LogCodecDisabled logs that a codec was replaced by the null backend.
func (l *Logger) LogCodecDisabled(ctx context.Context, c Compression, reason string) {
	l.WithCodec(c).DebugContext(ctx, "codec disabled",
		"reason", reason,
	)
}

// LogOverrideIgnored logs an environment override that could not be applied.
func (l *Logger) LogOverrideIgnored(ctx context.Context, key, value string) {
	l.WarnContext(ctx, "ignoring environment override",
		"key", key,
		"value", value,
	)
}

// LogCorruptBlock logs a block that failed to decode.
func (l *Logger) LogCorruptBlock(ctx context.Context, c Compression, size int, err error) {
	l.WithCodec(c).WarnContext(ctx, "corrupt compressed block",
		"size", size,
		"error", err,
	)
}
