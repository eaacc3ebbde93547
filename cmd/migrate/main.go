package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/badgeforge/issuer-api/internal/infrastructure/db/mongo"
	"github.com/badgeforge/issuer-api/internal/migrate"
	"github.com/badgeforge/issuer-api/pkg/logger"
)

func main() {
	log.SetFlags(0)
	var (
		uri      = flag.String("uri", envOr("MONGO_URI", "mongodb://localhost:27017"), "MongoDB URI")
		database = flag.String("db", envOr("MONGO_DB", "badgeforge"), "Database name")
		logLevel = flag.String("log-level", envOr("LOG_LEVEL", "info"), "Log level")
	)
	flag.Parse()

	if len(flag.Args()) == 0 {
		log.Fatal("usage: migrate [backfill-manifest-domains|status]")
	}

	zl := logger.Init(logger.Options{Level: *logLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: *uri, Database: *database})
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	mgr := migrate.NewManager(
		mongo.NewApplicationRepository(db),
		zl,
		rand.NewSource(time.Now().UnixNano()),
	)

	switch flag.Arg(0) {
	case "backfill-manifest-domains":
		err = mgr.BackfillManifestDomains(ctx)
	case "status":
		var status string
		status, err = mgr.Status(ctx)
		if err == nil {
			fmt.Println(status)
		}
	default:
		log.Fatalf("unknown command %q", flag.Arg(0))
	}
	if err != nil {
		log.Fatalf("migrate %s: %v", flag.Arg(0), err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
