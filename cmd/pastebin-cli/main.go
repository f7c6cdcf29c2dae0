package main

import (
	"context"
	"log/slog"

	"pastebinkit/cmd/pastebin-cli/commands"
	"pastebinkit/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	err := telemetry.SetupFromEnv(context.Background(), "pastebin-cli")
	if err != nil {
		slog.Warn("failed to set up telemetry", "err", err.Error())
	}
	commands.ExecuteContext(context.Background())
}
