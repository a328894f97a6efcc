package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/autoworkz/senseiiwyze-dashboard/infrastructure/database/postgres"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/config"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var schema = []string{
	`CREATE TABLE IF NOT EXISTS company_metrics (
		id               VARCHAR(32) PRIMARY KEY,
		company_id       VARCHAR(128) NOT NULL,
		metrics          JSONB NOT NULL,
		industry_context TEXT NOT NULL DEFAULT '',
		company_size     TEXT NOT NULL DEFAULT '',
		priorities       TEXT[] NOT NULL DEFAULT '{}',
		recorded_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS company_metrics_company_recorded_idx
		ON company_metrics (company_id, recorded_at DESC)`,
	`CREATE TABLE IF NOT EXISTS insight_reports (
		id               VARCHAR(32) PRIMARY KEY,
		company_id       VARCHAR(128) NOT NULL,
		summary          JSONB NOT NULL,
		health_score     INTEGER NOT NULL,
		generated_at     TIMESTAMPTZ NOT NULL,
		next_review_date TIMESTAMPTZ NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS insight_reports_company_generated_idx
		ON insight_reports (company_id, generated_at DESC)`,
	`CREATE TABLE IF NOT EXISTS chat_sessions (
		id              VARCHAR(200) PRIMARY KEY,
		company_id      VARCHAR(128) NOT NULL,
		topic           TEXT,
		status          VARCHAR(16) NOT NULL DEFAULT 'active',
		messages        JSONB NOT NULL DEFAULT '[]',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_message_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

type demoCompany struct {
	CompanyID       string
	IndustryContext string
	CompanySize     string
	Priorities      []string
	Metrics         domain.CompanyMetrics
}

// Três empresas de demonstração: métricas boas, médias e ruins
func demoCompanies() []demoCompany {
	base := domain.CompanyMetrics{
		RetentionRate:          0.88,
		EngagementScore:        78,
		ProductivityIndex:      82,
		TrainingCompletionRate: 0.85,
		CertificationPassRate:  0.80,
		SkillGapScore:          25,
		EmployeeSatisfaction:   76,
		TimeToProficiency:      45,
		TurnoverCost:           15000,
	}

	good := base
	good.RetentionRate = 0.95
	good.EngagementScore = 88
	good.ProductivityIndex = 92
	good.TrainingCompletionRate = 0.93
	good.CertificationPassRate = 0.89
	good.EmployeeSatisfaction = 87

	average := base
	average.RetentionRate = 0.70
	average.TrainingCompletionRate = 0.75
	average.ProductivityIndex = 85
	average.EngagementScore = 80

	poor := base
	poor.RetentionRate = 0.65
	poor.EngagementScore = 45
	poor.ProductivityIndex = 52
	poor.TrainingCompletionRate = 0.58
	poor.CertificationPassRate = 0.55
	poor.EmployeeSatisfaction = 48

	return []demoCompany{
		{CompanyID: "demo-good", IndustryContext: "software", CompanySize: "medium", Priorities: []string{"innovation"}, Metrics: good},
		{CompanyID: "demo-average", IndustryContext: "retail", CompanySize: "large", Priorities: []string{"retention", "training"}, Metrics: average},
		{CompanyID: "demo-poor", IndustryContext: "logistics", CompanySize: "small", Priorities: []string{"engagement", "productivity"}, Metrics: poor},
	}
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for _, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	return nil
}

func seedCompanies(ctx context.Context, tx *sql.Tx, companies []demoCompany) (int, error) {
	inserted := 0

	for i, company := range companies {
		var existing int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM company_metrics WHERE company_id = $1`, company.CompanyID).Scan(&existing)
		if err != nil {
			return inserted, err
		}
		if existing > 0 {
			logrus.WithField("company_id", company.CompanyID).Info("migration: company already seeded, skipping")
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return inserted, err
		}

		metricsJSON, err := json.Marshal(company.Metrics)
		if err != nil {
			return inserted, err
		}

		query, args, err := squirrel.
			Insert("company_metrics").
			Columns("id", "company_id", "metrics", "industry_context", "company_size", "priorities", "recorded_at").
			Values(id, company.CompanyID, metricsJSON, company.IndustryContext, company.CompanySize, pq.Array(company.Priorities), time.Now().UTC()).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return inserted, err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			logrus.WithError(err).WithField("company_id", company.CompanyID).Error("migration: failed to seed company")
			return inserted, err
		}

		inserted++
		logrus.WithFields(logrus.Fields{
			"company_id": company.CompanyID,
			"progress":   i + 1,
			"total":      len(companies),
		}).Info("migration: company seeded")
	}

	return inserted, nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("migration: starting")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("migration: failed to load config")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("migration: failed to connect to database")
	}
	defer conn.Close()

	startTime := time.Now()
	inserted := 0

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return errors.Wrap(err, "create schema")
		}

		seeded, err := seedCompanies(ctx, tx, demoCompanies())
		if err != nil {
			return errors.Wrap(err, "seed demo companies")
		}
		inserted = seeded
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("migration: failed")
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"seeded":   inserted,
	}).Info("migration: completed")
}
