package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lwmacct/251018-go-pkg-kvconf/internal/command/app"
)

func main() {
	slog.SetDefault(app.NewLogger(os.Stderr))

	if err := app.New().Run(context.Background(), os.Args); err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}
}
