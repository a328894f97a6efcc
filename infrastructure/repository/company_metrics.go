// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/autoworkz/senseiiwyze-dashboard/infrastructure/database/postgres"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	companyMetricsTable = "company_metrics cm"
)

//go:generate mockgen -source=company_metrics.go -destination=mocks/company_metrics_mock.go -package=mocks
type CompanyMetricsRepository interface {
	Save(ctx context.Context, snapshot *domain.CompanyMetricsSnapshot) error
	GetLatestByCompanyID(ctx context.Context, companyID string) (*domain.CompanyMetricsSnapshot, error)
}

type companyMetricsRepository struct {
	conn postgres.Conn
}

func NewCompanyMetricsRepository(conn postgres.Conn) CompanyMetricsRepository {
	return &companyMetricsRepository{
		conn: conn,
	}
}

func (r *companyMetricsRepository) Save(ctx context.Context, snapshot *domain.CompanyMetricsSnapshot) error {
	metricsJSON, err := json.Marshal(snapshot.Metrics)
	if err != nil {
		return fmt.Errorf("error serializing metrics to JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("company_metrics").
		Columns("id", "company_id", "metrics", "industry_context", "company_size", "priorities", "recorded_at").
		Values(
			snapshot.ID,
			snapshot.CompanyID,
			metricsJSON,
			snapshot.IndustryContext,
			snapshot.CompanySize,
			pq.Array(snapshot.Priorities),
			snapshot.RecordedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *companyMetricsRepository) GetLatestByCompanyID(ctx context.Context, companyID string) (*domain.CompanyMetricsSnapshot, error) {
	query, args, err := squirrel.
		Select("cm.id, cm.company_id, cm.metrics, cm.industry_context, cm.company_size, cm.priorities, cm.recorded_at").
		From(companyMetricsTable).
		Where(squirrel.Eq{"cm.company_id": companyID}).
		OrderBy("cm.recorded_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	snapshot := &domain.CompanyMetricsSnapshot{}
	var metricsJSON []byte
	var priorities pq.StringArray

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.ID,
		&snapshot.CompanyID,
		&metricsJSON,
		&snapshot.IndustryContext,
		&snapshot.CompanySize,
		&priorities,
		&snapshot.RecordedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning metrics snapshot: %w", err)
	}

	if err := json.Unmarshal(metricsJSON, &snapshot.Metrics); err != nil {
		return nil, fmt.Errorf("error deserializing metrics JSON: %w", err)
	}
	snapshot.Priorities = []string(priorities)

	return snapshot, nil
}
