package observability

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// slogHandler writes slog records to a zap logger.
type slogHandler struct {
	logger *zap.Logger
	prefix string
}

// NewSlogHandler returns a slog.Handler that forwards every record to logger.
// Attribute groups are flattened into dotted keys.
func NewSlogHandler(logger *zap.Logger) slog.Handler {
	return &slogHandler{logger: logger}
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Core().Enabled(zapLevelOf(level))
}

func (h *slogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := h.logger.Check(zapLevelOf(record.Level), record.Message)
	if entry == nil {
		return nil
	}

	fields := make([]zap.Field, 0, record.NumAttrs())
	record.Attrs(func(attr slog.Attr) bool {
		fields = appendAttr(fields, h.prefix, attr)
		return true
	})

	entry.Write(fields...)
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var fields []zap.Field
	for _, attr := range attrs {
		fields = appendAttr(fields, h.prefix, attr)
	}

	return &slogHandler{logger: h.logger.With(fields...), prefix: h.prefix}
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &slogHandler{logger: h.logger, prefix: h.prefix + name + "."}
}

func appendAttr(fields []zap.Field, prefix string, attr slog.Attr) []zap.Field {
	value := attr.Value.Resolve()

	if value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix += attr.Key + "."
		}

		for _, member := range value.Group() {
			fields = appendAttr(fields, groupPrefix, member)
		}

		return fields
	}

	if attr.Key == "" {
		return fields
	}

	key := prefix + attr.Key

	switch value.Kind() {
	case slog.KindString:
		return append(fields, zap.String(key, value.String()))
	case slog.KindInt64:
		return append(fields, zap.Int64(key, value.Int64()))
	case slog.KindUint64:
		return append(fields, zap.Uint64(key, value.Uint64()))
	case slog.KindFloat64:
		return append(fields, zap.Float64(key, value.Float64()))
	case slog.KindBool:
		return append(fields, zap.Bool(key, value.Bool()))
	case slog.KindDuration:
		return append(fields, zap.Duration(key, value.Duration()))
	case slog.KindTime:
		return append(fields, zap.Time(key, value.Time()))
	default:
		return append(fields, zap.Any(key, value.Any()))
	}
}

func zapLevelOf(level slog.Level) zapcore.Level {
	switch {
	case level < slog.LevelInfo:
		return zapcore.DebugLevel
	case level < slog.LevelWarn:
		return zapcore.InfoLevel
	case level < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
