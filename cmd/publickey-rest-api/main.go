// Package main is the entry point for the publickey-rest-api application.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/derricw/publickey/internal/api/rest/v1"
	"github.com/derricw/publickey/internal/app"
	"github.com/derricw/publickey/internal/domain/keys"
	"github.com/derricw/publickey/internal/infrastructure/cryptography"
	"github.com/derricw/publickey/internal/infrastructure/persistence"
	"github.com/derricw/publickey/internal/infrastructure/persistence/models"
	"github.com/derricw/publickey/internal/pkg/config"
	"github.com/derricw/publickey/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.json"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	services, err := initializeServices(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application components
type appServices struct {
	keyGeneration keys.KeyGenerationService
	metadata      keys.KeyPairMetadataService
	cipher        keys.CipherService
}

// initializeServices sets up the database, the arithmetic engine and the
// application services.
func initializeServices(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.KeyPairModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	keyPairRepo, err := persistence.NewGormKeyPairRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair repository: %w", err)
	}

	generator, err := cryptography.NewKeyGenerator(
		cryptography.NewPrimalityTester(cryptography.DefaultMillerRabinRounds),
		cryptography.SearchPolicy{},
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	engine, err := cryptography.NewCipherEngine(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher engine: %w", err)
	}

	keyGeneration, err := app.NewKeyGenerationService(generator, keyPairRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generation service: %w", err)
	}

	metadata, err := app.NewKeyPairMetadataService(keyPairRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata service: %w", err)
	}

	cipher, err := app.NewCipherService(engine, keyPairRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	return &appServices{
		keyGeneration: keyGeneration,
		metadata:      metadata,
		cipher:        cipher,
	}, nil
}

func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, services.keyGeneration, services.metadata, services.cipher)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting REST API on port ", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("Received signal ", sig, ", shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
