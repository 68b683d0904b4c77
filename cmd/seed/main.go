package main

import (
	"context"
	"flag"
	"strings"

	"github.com/tair/ims-admin/internal/app"
	"github.com/tair/ims-admin/internal/seed"
	"github.com/tair/ims-admin/pkg/config"
	"github.com/tair/ims-admin/pkg/database"
	"github.com/tair/ims-admin/pkg/logger"
)

func main() {
	tables := flag.String("tables", "", "comma separated tables to reset (default: "+strings.Join(seed.Tables(), ",")+")")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.ServiceName+"-seed", cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := app.Migrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	var names []string
	for _, name := range strings.Split(*tables, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	if err := seed.Run(context.Background(), db, names...); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Seeding failed")
	}
	logger.Logger.Info().Msg("Seeding complete")
}
