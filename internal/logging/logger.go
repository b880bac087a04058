package logging

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	ctxLoggerKey = "logger"
)

type Logger struct {
	*slog.Logger
}

func BuildLogger(w io.Writer, level slog.Level) *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
	return &logger
}

// ParseLevel accepts debug, info, warn and error, in any case.
func ParseLevel(level string) (slog.Level, error) {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
	return parsed, nil
}

// Middleware stores the server logger in every request context so handlers can retrieve it with BuildLoggerFromCtx.
func Middleware(logger *Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(ctxLoggerKey, logger)
		ctx.Next()
	}
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	value, _ := ctx.Get(ctxLoggerKey)
	base, ok := value.(*Logger)
	if !ok {
		base = BuildLogger(os.Stdout, slog.LevelDebug)
	}
	logger := Logger{Logger: base.With("path", ctx.Request.URL.Path)}
	return &logger
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
