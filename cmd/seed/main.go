// Command seed imports questions from the Open Trivia DB.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/question/external"
)

func main() {
	var (
		amount     = flag.Int("amount", 50, "Number of questions to import")
		difficulty = flag.String("difficulty", "", "Restrict to easy, medium or hard")
	)
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Warn().Err(err).Msg("could not load .env file")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.New(cfg.Name+"-seed", cfg.Env)

	pool, err := db.NewPool(ctx, cfg.Postgres, cfg.TraceSQL(), logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}
	defer pool.Close()

	queries := sqlcgen.New(pool)
	client := external.NewOpenTDBClient(cfg.OpenTDB.BaseURL, &http.Client{Timeout: cfg.OpenTDB.Timeout})
	importer := question.NewImporter(
		client,
		repository.NewCategoryRepository(queries),
		repository.NewQuestionRepository(queries),
		logger,
	)

	res, err := importer.Import(ctx, *amount, *difficulty)
	if err != nil {
		logger.Error().Err(err).Int("imported", res.Imported).Msg("import stopped early")
		pool.Close()
		os.Exit(1)
	}
}
