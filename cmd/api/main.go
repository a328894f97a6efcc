package main

import (
	"context"

	"github.com/autoworkz/senseiiwyze-dashboard/infrastructure/database/postgres"
	"github.com/autoworkz/senseiiwyze-dashboard/infrastructure/repository"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/api"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/config"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/scheduler"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/usecases/authenticating"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/usecases/chatting"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/usecases/insighting"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatalf("config: %v", err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Env)

	if err := cfg.Validate(); err != nil {
		log.L.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metricsRepo := repository.NewCompanyMetricsRepository(pgConn)
	reportRepo := repository.NewInsightReportRepository(pgConn)
	chatSessionRepo := repository.NewChatSessionRepository(pgConn)

	authenticator := authenticating.NewService(cfg)
	insightService := insighting.NewService(metricsRepo, reportRepo)
	chatService := chatting.NewService(chatSessionRepo)

	reviewSyncService := scheduler.NewReviewSyncService(reportRepo, insightService, cfg)
	if err := reviewSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("review-sync: failed to start scheduler")
	}

	server := api.New(cfg, insightService, chatService, authenticator, reviewSyncService)

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("server: stopped with error")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("database: failed to connect to PostgreSQL")
	}

	log.L.Info("database: PostgreSQL connection established")
	return conn
}
