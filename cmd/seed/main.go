package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/okan/enrollment/internal/bootstrap"
	"github.com/okan/enrollment/internal/config"
	"github.com/okan/enrollment/internal/pkg/logger"
	"github.com/okan/enrollment/internal/seed"
)

func main() {
	rngSeed := flag.Int64("seed", 0, "random source seed (deterministic fixtures)")
	students := flag.Int("students", seed.DefaultCounts.Students, "number of students to generate")
	instructors := flag.Int("instructors", seed.DefaultCounts.Instructors, "number of instructors to generate")
	enrollments := flag.Int("enrollments", seed.DefaultCounts.Enrollments, "number of enrollments to generate")
	flag.Parse()

	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	lgr := log.Logger

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	seeder := seed.NewSeeder(dbPool, *rngSeed, lgr)
	counts := seed.Counts{
		Instructors: *instructors,
		Students:    *students,
		Enrollments: *enrollments,
	}

	if err := seeder.Run(ctx, counts); err != nil {
		lgr.Error().Err(err).Msg("Seeding failed")
		os.Exit(1)
	}

	lgr.Info().Msg("Data generation and insertion completed successfully")
}
