package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/prescriptions-api/internal/config"
	"github.com/jwalitptl/prescriptions-api/internal/repository/postgres"
	"github.com/jwalitptl/prescriptions-api/pkg/logger"
)

var commands = map[string]bool{
	"up":      true,
	"down":    true,
	"status":  true,
	"redo":    true,
	"reset":   true,
	"version": true,
}

func main() {
	configPath := flag.String("config", "", "path to config.yml")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [-config path] up|down|status|redo|reset|version\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	command := flag.Arg(0)
	if !commands[command] {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	if cfg.Database.Driver != "postgres" {
		log.Fatal().Str("driver", cfg.Database.Driver).Msg("migrations only apply to the postgres driver")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(context.Background(), db, command); err != nil {
		log.Error().Err(err).Msg("migration failed")
		return
	}
	log.Info().Str("command", command).Msg("migration finished")
}
