package main

import (
	"context"       // Context for startup operations
	"html/template" // Template function map

	"github.com/Gabohhh/Casinomongo2/internal/api"     // HTTP handlers
	"github.com/Gabohhh/Casinomongo2/internal/config"  // Configuration
	"github.com/Gabohhh/Casinomongo2/internal/session" // Session store
	"github.com/Gabohhh/Casinomongo2/internal/store"   // Document store
	"github.com/Gabohhh/Casinomongo2/internal/utils"   // Formatting helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to MongoDB (also ensures the email and user_id indexes)
	st, err := store.NewMongoStore(store.MongoConfig{URI: cfg.MongoURI, Database: cfg.MongoDB})
	if err != nil {
		logrus.Fatalf("failed to connect to MongoDB: %v", err)
	}

	// Setup Redis client for the session store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	sessions := session.NewRedisStore(redisClient, session.TTL)

	// Create the default admin account if it does not exist
	if err := store.EnsureAdmin(context.Background(), st, cfg.BcryptCost); err != nil {
		logrus.Fatalf("failed to seed admin user: %v", err)
	}

	// Optionally create the demo player with its sample history
	if cfg.SeedDemo {
		if err := store.SeedDemoUser(context.Background(), st, cfg.BcryptCost); err != nil {
			logrus.Fatalf("failed to seed demo user: %v", err)
		}
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Template helpers and pages
	r.SetFuncMap(template.FuncMap{
		"formatCurrency": utils.FormatCurrency, // $1,234.56
		"formatBalance":  utils.FormatCurrency, // Alias kept for the templates
	})
	r.LoadHTMLGlob(cfg.TemplateGlob)

	// Panel routes
	api.RegisterRoutes(r, st, sessions, cfg.BcryptCost)

	logrus.Infof("Server running on %s", cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
