package logger

import (
	"log/slog"
	"os"
	"strings"
)

var log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Init configures the process-wide logger for the given environment.
// development gets human readable debug output, anything else gets JSON.
func Init(env string) {
	var handler slog.Handler
	switch strings.ToLower(env) {
	case "development", "dev", "local":
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass a bare error (logger.Error("msg", err))
// without producing !BADKEY attributes.
func normalize(args []any) []any {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case error:
			return []any{slog.String("error", v.Error())}
		case slog.Attr:
			return args
		default:
			return []any{slog.Any("detail", v)}
		}
	}
	return args
}
