package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/agent"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/api/handlers"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/api/middleware"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/config"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/database"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/events"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/shopify"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/store"
	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/sync"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	db     *database.Database
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, db *database.Database) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Initialize handlers
	st := store.New(db.DB)
	queryAgent := agent.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, db.DB, logger)
	queryHandler := handlers.NewQueryHandler(queryAgent, logger)
	productHandler := handlers.NewProductHandler(st, logger)
	orderHandler := handlers.NewOrderHandler(st, logger)
	cartHandler := handlers.NewCartHandler(st, logger)
	syncHandler := handlers.NewSyncHandler(func() (sync.Report, error) {
		// A fresh client and pipeline per run; nothing is shared
		// across runs.
		client := shopify.NewClient(cfg.ShopHandle, cfg.APIVersion, cfg.AccessToken, logger)
		publisher := events.NewPublisher(cfg.KafkaBrokers, logger)
		defer publisher.Close()
		return sync.New(cfg.ShopHandle, client, db.DB, publisher, logger).Run()
	}, logger)

	// Routes
	router.GET("/", index)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/query", queryHandler.Ask)
		v1.GET("/products", productHandler.List)
		v1.GET("/orders", orderHandler.List)
		v1.POST("/cart", cartHandler.Add)
		v1.POST("/sync", syncHandler.Run)
	}

	return &Server{
		config: cfg,
		logger: logger,
		db:     db,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}
