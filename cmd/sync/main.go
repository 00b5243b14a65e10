package main

import (
	"log"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/config"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/database"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/events"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/shopify"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/sync"
)

// Runs one full sync (products, then orders) and exits.
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
	defer db.Close()

	client := shopify.NewClient(cfg.ShopHandle, cfg.APIVersion, cfg.AccessToken, logger)
	publisher := events.NewPublisher(cfg.KafkaBrokers, logger)
	defer publisher.Close()

	syncer := sync.New(cfg.ShopHandle, client, db.DB, publisher, logger)

	logger.Info("Starting sync for %s...", cfg.ShopHandle)
	report, err := syncer.Run()
	if err != nil {
		logger.Fatal("Sync failed: %v", err)
	}
	logger.Info("Sync complete: %d product rows, %d orders", report.ProductsInserted, report.OrdersInserted)
}
