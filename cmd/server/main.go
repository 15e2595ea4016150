package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"

	"github.com/preston-bernstein/live-arena-service/internal/config"
	"github.com/preston-bernstein/live-arena-service/internal/logging"
	"github.com/preston-bernstein/live-arena-service/internal/server"
)

const (
	appName    = "live-arena-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	envErr := loadDotEnv(envFiles()...)
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
	})
	if envErr != nil {
		logging.Warn(logger, "failed to load env file", slog.Any(logging.FieldError, envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

// envFiles returns ENV_FILE when set, otherwise the default .env.
func envFiles() []string {
	if path := os.Getenv("ENV_FILE"); path != "" {
		return []string{path}
	}
	return nil
}

// loadDotEnv populates unset environment variables from the given files. A missing file is not an error.
func loadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "load env")
	}
	return nil
}
