package main

import (
	"context"
	"log/slog"
	"mssos-scraper/cmd/mssos-cli/commands"
	"mssos-scraper/internal/components/telemetry"
	"os"
	"time"
)

func main() {
	ctx := context.Background()

	providers, err := telemetry.SetupFromEnv(ctx, "mssos-cli")
	if err != nil {
		slog.Warn("failed to setup telemetry", "err", err)
	}

	code := commands.ExecuteContext(ctx)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = providers.Shutdown(shutdownCtx)
	if err != nil {
		slog.Warn("failed to flush telemetry", "err", err)
	}
	os.Exit(code)
}
