package main

import (
	"context"

	migrations "roomdesk/internal/migrations/mongo"
	"roomdesk/pkg/config"
)

const ServiceName = "migrate"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	cfg.Log.Info("Running migrations", "database", cfg.MongoDatabaseName)
	if err := migrations.RunMigration(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	cfg.Log.Info("Seeding baseline data")
	if err := migrations.Seed(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName); err != nil {
		cfg.Log.Fatal("Seeding failed", "error", err)
	}

	cfg.Log.Info("All migrations applied successfully")
	cfg.GracefulShutdown()
}
