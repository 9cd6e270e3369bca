package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nutrilens/nutrilens-be/internal/api"
	"github.com/nutrilens/nutrilens-be/internal/auth"
	"github.com/nutrilens/nutrilens-be/internal/config"
	"github.com/nutrilens/nutrilens-be/internal/database"
	"github.com/nutrilens/nutrilens-be/internal/logger"
	"github.com/nutrilens/nutrilens-be/internal/monitoring"
	"github.com/nutrilens/nutrilens-be/internal/services"
	"github.com/nutrilens/nutrilens-be/internal/vision"
	"github.com/nutrilens/nutrilens-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTExpiresIn, cfg.CookieExpiryDays, cfg.IsProduction())
	userService := services.NewUserService(db)
	productService := services.NewProductService(db)
	blogService := services.NewBlogService(db)
	chatService := services.NewChatService(cfg.AssistantAPIURL, cfg.AssistantAPIKey)
	visionClient := vision.NewClient(cfg.VisionAPIURL, cfg.VisionAPIKey)

	// Set up and run the background stat updater
	statUpdater := monitoring.NewStatUpdater()
	go statUpdater.Run()

	// Set up and run the blog publication scheduler
	blogScheduler, err := monitoring.NewBlogScheduler(blogService, hub, cfg.BlogCron)
	if err != nil {
		log.Fatal().Err(err).Str("cron", cfg.BlogCron).Msg("Invalid blog schedule")
	}
	go blogScheduler.Run()

	// Set up router
	router := api.NewRouter(api.RouterDeps{
		Tokens:     tokens,
		Users:      userService,
		Products:   productService,
		Blogs:      blogService,
		Chat:       chatService,
		Vision:     visionClient,
		Hub:        hub,
		Stats:      statUpdater,
		CORSOrigin: cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	statUpdater.Stop()
	blogScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
