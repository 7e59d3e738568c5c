package logger_i

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/akolanti/RagWeb/internal/config"
)

// Logger keeps its attributes and binds them to slog.Default on every call,
// so package level loggers created before Init still pick up the configured handler.
type Logger struct {
	attrs []any
}

// Init installs the process-wide slog handler. JSON in production, text otherwise.
func Init(debug bool, production bool) {
	initWithWriter(os.Stdout, debug, production)
}

func initWithWriter(w io.Writer, debug bool, production bool) {
	options := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	if !debug {
		options.Level = slog.LevelInfo
	}

	var handler slog.Handler
	if production {
		options.Level = config.LOG_LEVEL_PROD
		handler = slog.NewJSONHandler(w, options)
	} else {
		handler = slog.NewTextHandler(w, options)
	}
	slog.SetDefault(slog.New(handler))
}

func NewLogger(section string) *Logger {
	return &Logger{
		attrs: []any{"component", section},
	}
}

func (l *Logger) inner() *slog.Logger {
	return slog.Default().With(l.attrs...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	if !slog.Default().Enabled(context.Background(), level) {
		return
	}
	l.inner().Log(context.Background(), level, msg, args...)
}

func (l *Logger) With(args ...any) *Logger {
	attrs := make([]any, 0, len(l.attrs)+len(args))
	attrs = append(attrs, l.attrs...)
	return &Logger{
		attrs: append(attrs, args...),
	}
}

// WithTrace returns a child logger carrying the request trace id, if the context has one.
func (l *Logger) WithTrace(ctx context.Context) *Logger {
	if trace, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok && trace != "" {
		return l.With("traceId", trace)
	}
	return l
}
