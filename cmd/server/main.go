package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TFMV/SalientPosts/internal/summarizer"
	"github.com/TFMV/SalientPosts/pkg/api"
	"github.com/TFMV/SalientPosts/pkg/config"
	"github.com/TFMV/SalientPosts/pkg/db"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration
	configPath := "config.yaml"
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// Create the database connection pool
	pool, err := db.NewConnection(context.Background(), cfg.DBCreds)
	if err != nil {
		logger.Fatal("failed to create database connection pool", zap.Error(err))
	}
	defer pool.Close()

	store := summarizer.NewStore(pool)
	runner := summarizer.NewRunner(store, logger)

	// Set up the HTTP server
	router := gin.Default()
	api.SetupRoutes(router, runner, cfg.Summarizer, logger)

	logger.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
