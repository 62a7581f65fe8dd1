package main

import (
	"os"

	"taskboard/internal/config"
	"taskboard/internal/logger"
	"taskboard/internal/server"
)

// @title           Task Board API
// @version         1.0
// @description     Boards, lists and cards for a Trello-style task board.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()
	logger.Initialize(cfg.LogLevel, cfg.LogJSON)

	s, err := server.Init(cfg)
	if err != nil {
		logger.Log.Error("❌ Server initialization failed", "error", err)
		os.Exit(1)
	}

	s.Run()
}
