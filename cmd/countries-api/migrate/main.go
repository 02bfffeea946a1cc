package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/country-mirror/pkg/config"
	"github.com/chainsafe/country-mirror/pkg/migrations/countriesdb"
	"github.com/chainsafe/country-mirror/pkg/pgutil"
	mghelper "github.com/chainsafe/country-mirror/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration: %s", err.Error())
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("error creating logger: %s", err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	defer db.Close()

	log.Printf("Running migrations for countries database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, countriesdb.Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%v", err)
	}
}
