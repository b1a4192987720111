package telemetry

import (
	"log/slog"
	"os"
)

// InitLogger installs a JSON slog handler as the process-wide default.
func InitLogger(env string) {
	level := slog.LevelInfo
	if env == "development" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
