package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"resourcedir/internal/config"
	"resourcedir/internal/handlers"
	"resourcedir/internal/middleware"
	"resourcedir/internal/models"
	"resourcedir/internal/registry"
	"resourcedir/internal/repositories/mongodb"
	"resourcedir/internal/services"
	"resourcedir/internal/utils"
	"resourcedir/pkg/cache"
	"resourcedir/pkg/database"
	"resourcedir/pkg/geocode"
	"resourcedir/pkg/logger"
	"resourcedir/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Colors: cfg.App.Debug,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Connect to MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	collections := make([]string, 0, len(models.AllSchemas()))
	for _, schema := range models.AllSchemas() {
		collections = append(collections, schema.Kind.Collection())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureResourceIndexes(ctx, db.Database, collections); err != nil {
		cancel()
		appLogger.Fatalf("Failed to ensure indexes: %v", err)
	}
	cancel()

	// Optional Redis read cache
	var resourceCache mongodb.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.Warnf("Redis unavailable, running without cache: %v", err)
		} else {
			defer redisCache.Close()
			resourceCache = redisCache
		}
	}

	// Optional geocoder for address enrichment
	var geocoder services.Geocoder
	if cfg.Maps.GoogleAPIKey != "" {
		googleGeocoder, err := geocode.NewGoogleGeocoder(cfg.Maps.GoogleAPIKey)
		if err != nil {
			appLogger.Warnf("Geocoder unavailable: %v", err)
		} else {
			geocoder = googleGeocoder
		}
	}

	// One store per kind, one engine for all of them
	reg := registry.New()
	for _, schema := range models.AllSchemas() {
		reg.Register(schema, mongodb.NewResourceRepository(db.Database, schema.Kind, resourceCache))
	}

	resourceService := services.NewResourceService(reg, geocoder, appLogger)
	resourceHandler := handlers.NewResourceHandler(resourceService, appLogger)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	v1 := router.Group("/api/v1")
	{
		routes.SetupResourceRoutes(v1, resourceHandler, reg.Kinds())
	}

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Ping(); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": utils.AppVersion,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting %s on %s", cfg.App.Name, addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server failed: %v", err)
	}
}
