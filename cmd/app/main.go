package main

import (
	"context"
	"studio/config"
	"studio/di"
	"studio/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go app.Worker.Run(ctx)

	app.HTTP.Serve()
}
