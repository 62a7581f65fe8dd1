package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/apiclient"
	"taskboard/internal/config"
	"taskboard/internal/logger"
	"taskboard/internal/markdown"
	"taskboard/internal/web"
)

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.LogLevel, cfg.LogJSON)

	client := apiclient.New(cfg.APIBaseURL)
	client.HTTPClient.Timeout = 10 * time.Second

	h, err := web.New(client, markdown.New())
	if err != nil {
		logger.Log.Error("❌ Failed to load templates", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.WebPort,
		Handler: h.Router(),
	}

	go func() {
		logger.Log.Info("🚀 Web frontend running", "port", cfg.WebPort, "api", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("❌ Failed to listen", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("🛑 Shutting down web frontend...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("❌ Web frontend forced to shutdown", "error", err)
	}
}
