package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"krishimitra-backend/config"
	_ "krishimitra-backend/docs" // Swagger docs
	advisoryHTTP "krishimitra-backend/internal/advisory/delivery/http"
	advisoryMongo "krishimitra-backend/internal/advisory/repository/mongo"
	"krishimitra-backend/internal/advisory/usecase"
	"krishimitra-backend/internal/cropindex"
	"krishimitra-backend/internal/httpserver"
	"krishimitra-backend/internal/intent"
	"krishimitra-backend/pkg/geocode"
	"krishimitra-backend/pkg/llmprovider"
	"krishimitra-backend/pkg/log"
	"krishimitra-backend/pkg/openweather"
)

// @title       KrishiMitra Advisory API
// @description Farmer assistance backend: crop recommendation, soil health advice, and scheme answers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting KrishiMitra Advisory...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Crop index artifact. The service cannot answer recommendation
	// queries without it, so a load failure is fatal.
	bundle, err := cropindex.Load(ctx, cfg.CropIndex.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load crop index from %s: %v", cfg.CropIndex.Path, err)
		return
	}
	logger.Infof(ctx, "Crop index loaded: %d crops, dim %d, built %s",
		bundle.Index.Size(), bundle.Index.Dim(), bundle.BuiltAt)

	// 4. MongoDB
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MongoDB: %v", err)
		return
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Warnf(context.Background(), "MongoDB disconnect: %v", err)
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		cancel()
		logger.Fatalf(ctx, "MongoDB ping failed: %v", err)
		return
	}
	cancel()
	logger.Infof(ctx, "Connected to MongoDB database %q", cfg.Mongo.Database)

	farmerRepo := advisoryMongo.New(logger, mongoClient.Database(cfg.Mongo.Database))

	// 5. Weather and geocoding (optional enrichment)
	var weatherClient openweather.IOpenWeather
	if cfg.OpenWeather.APIKey != "" {
		weatherClient, err = openweather.New(openweather.Config{APIKey: cfg.OpenWeather.APIKey})
		if err != nil {
			logger.Warnf(ctx, "OpenWeather not available (optional): %v", err)
		}
	} else {
		logger.Warn(ctx, "OPENWEATHER_API_KEY not set, answers will omit weather context")
	}

	var geocodeClient geocode.IGeocode
	geocodeClient, err = geocode.New(geocode.Config{
		UserAgent: cfg.Geocode.UserAgent,
		CacheSize: cfg.Geocode.CacheSize,
		CacheTTL:  parseDuration(cfg.Geocode.CacheTTL, 24*time.Hour),
	})
	if err != nil {
		logger.Warnf(ctx, "Geocoding not available (optional): %v", err)
		geocodeClient = nil
	}

	// 6. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, time.Minute),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	// 7. Advisory domain
	classifier := intent.New(llmManager, logger)
	advisoryUC := usecase.New(
		logger,
		farmerRepo,
		classifier,
		bundle,
		weatherClient,
		geocodeClient,
		llmManager,
		cfg.CropIndex.TopK,
		cfg.OpenWeather.ForecastHours,
	)
	advisoryHandler := advisoryHTTP.New(logger, advisoryUC)

	// 8. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AdvisoryHandler: advisoryHandler,
		IndexReady:      func() bool { return bundle != nil },
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
