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
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
