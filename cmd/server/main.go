package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maintenance-hub-backend/internal/api/handlers"
	"maintenance-hub-backend/internal/api/routes"
	"maintenance-hub-backend/internal/auth"
	"maintenance-hub-backend/internal/config"
	"maintenance-hub-backend/internal/database"
	"maintenance-hub-backend/internal/logger"
	"maintenance-hub-backend/internal/notify"
	"maintenance-hub-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "maintenance-hub-backend/docs" // This is needed for swag
)

//	@title			Maintenance Hub API
//	@version		1.0
//	@description	Backend API for industrial maintenance management: machinery, service orders, preventive schedules, history, parts inventory, tasks and calendar.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.email	support@maintenance-hub.local

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{Driver: cfg.DatabaseDriver})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	deps := routes.Dependencies{HealthChecks: make(map[string]handlers.HealthCheck)}

	if cfg.RedisURL != "" {
		tokens, err := auth.NewRedisTokenStore(cfg.RedisURL)
		if err != nil {
			logrus.Fatal("Failed to configure Redis token store: ", err)
		}
		defer tokens.Close()
		deps.Tokens = tokens
		deps.HealthChecks["redis"] = tokens.Ping
		logrus.Info("Refresh tokens stored in Redis")
	} else {
		deps.Tokens = auth.NewMemoryTokenStore()
		logrus.Warn("REDIS_URL not set, refresh tokens are kept in memory")
	}

	if cfg.StorageEnabled() {
		store, err := storage.New(storage.Options{
			Endpoint:  cfg.StorageEndpoint,
			AccessKey: cfg.StorageAccessKey,
			SecretKey: cfg.StorageSecretKey,
			Bucket:    cfg.StorageBucket,
			UseSSL:    cfg.StorageUseSSL,
		})
		if err != nil {
			logrus.Fatal("Failed to configure object storage: ", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := store.EnsureBucket(ctx); err != nil {
			logrus.WithError(err).Warn("Object storage bucket check failed")
		}
		cancel()
		deps.Storage = store
		deps.HealthChecks["storage"] = store.Ping
	} else {
		logrus.Warn("Object storage not configured, uploads are disabled")
	}

	if cfg.EmailEnabled() {
		deps.Mailer = notify.NewClient(cfg.EmailAPIURL, cfg.EmailAPIKey, cfg.EmailFrom)
	} else {
		deps.Mailer = notify.DisabledMailer{}
		logrus.Warn("Email provider not configured, welcome emails are disabled")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg, deps)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
