// Command sweep runs the past-date sweep once and exits. Useful for
// backfilling after downtime; the API process runs the same sweep daily.
package main

import (
	"context"
	"log"
	"time"

	"go-clinic/internal/config"
	"go-clinic/internal/database"
	"go-clinic/internal/features/availabledate"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer client.Disconnect(context.Background())

	zlog, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	db := &database.MongodbDB{DB: client.Database(cfg.DBName)}
	repo := availabledate.NewDateRepository(db)
	service := availabledate.NewDateService(repo, zlog)

	modified, err := service.Sweep(ctx, time.Now())
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	log.Printf("sweep done, %d dates marked unavailable\n", modified)
}
