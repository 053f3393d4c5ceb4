package main

import (
	"context"
	"log"
	"time"

	"resourcedir/internal/config"
	"resourcedir/internal/models"
	"resourcedir/internal/registry"
	"resourcedir/internal/repositories/mongodb"
	"resourcedir/internal/services"
	"resourcedir/pkg/database"
	"resourcedir/pkg/logger"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the directory with a representative dataset per kind. Records go
// through the service layer so schema validation and defaults apply the
// same way they do for API writes.
func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{Level: cfg.App.LogLevel, Format: cfg.App.LogFormat})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	collections := make([]string, 0, len(models.AllSchemas()))
	for _, schema := range models.AllSchemas() {
		collections = append(collections, schema.Kind.Collection())
	}
	if err := database.EnsureResourceIndexes(ctx, db.Database, collections); err != nil {
		appLogger.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Clear existing data before re-seeding
	for _, name := range collections {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			appLogger.Fatalf("Failed to clear %s: %v", name, err)
		}
	}
	appLogger.Info("Cleared existing data")

	reg := registry.New()
	for _, schema := range models.AllSchemas() {
		reg.Register(schema, mongodb.NewResourceRepository(db.Database, schema.Kind, nil))
	}
	service := services.NewResourceService(reg, nil, appLogger)

	seeded := 0
	for _, record := range seedData() {
		kind := record.Kind
		if _, err := service.Create(ctx, kind, record); err != nil {
			appLogger.Fatalf("Failed to seed %s %q: %v", kind, record.Name, err)
		}
		seeded++
	}

	appLogger.Infof("Database seeded successfully with %d records", seeded)
}
