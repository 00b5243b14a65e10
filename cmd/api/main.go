package main

import (
	"log"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/api"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/config"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/database"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize database
	db, err := database.New(database.PathFor(cfg.DataDir, cfg.ShopHandle))
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}

	// Initialize API server
	server := api.New(cfg, logger, db)

	// Start server
	logger.Info("Starting API server on port " + cfg.APIPort)
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
