package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	app "github.com/lwmacct/251218-go-easygui/internal/command/generate"
	"github.com/lwmacct/251219-go-pkg-logm/pkg/logm"
)

func main() {
	_ = logm.Init(logm.PresetAuto()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := app.Command.Run(ctx, os.Args)
	stop()
	if err != nil {
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
