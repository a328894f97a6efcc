package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/autoworkz/senseiiwyze-dashboard/infrastructure/database/postgres"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/lib/pq"
)

const (
	insightReportsTable = "insight_reports ir"
)

//go:generate mockgen -source=insight_report.go -destination=mocks/insight_report_mock.go -package=mocks
type InsightReportRepository interface {
	Save(ctx context.Context, report *domain.InsightReport) error
	GetLatestByCompanyID(ctx context.Context, companyID string) (*domain.InsightReport, error)
	ListByCompanyID(ctx context.Context, companyID string, since *time.Time) ([]*domain.InsightReport, error)
	ListCompaniesDueForReview(ctx context.Context, now time.Time) ([]string, error)
}

type insightReportRepository struct {
	conn postgres.Conn
}

func NewInsightReportRepository(conn postgres.Conn) InsightReportRepository {
	return &insightReportRepository{
		conn: conn,
	}
}

func (r *insightReportRepository) Save(ctx context.Context, report *domain.InsightReport) error {
	summaryJSON, err := json.Marshal(report.Summary)
	if err != nil {
		return fmt.Errorf("error serializing summary to JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("insight_reports").
		Columns("id", "company_id", "summary", "health_score", "generated_at", "next_review_date").
		Values(
			report.ID,
			report.CompanyID,
			summaryJSON,
			report.Summary.OverallHealthScore,
			report.GeneratedAt,
			report.NextReviewDate,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&report.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *insightReportRepository) GetLatestByCompanyID(ctx context.Context, companyID string) (*domain.InsightReport, error) {
	query, args, err := r.selectReports().
		Where(squirrel.Eq{"ir.company_id": companyID}).
		OrderBy("ir.generated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	report, err := r.scanReport(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning insight report: %w", err)
	}

	return report, nil
}

func (r *insightReportRepository) ListByCompanyID(ctx context.Context, companyID string, since *time.Time) ([]*domain.InsightReport, error) {
	builder := r.selectReports().
		Where(squirrel.Eq{"ir.company_id": companyID}).
		OrderBy("ir.generated_at DESC")

	if since != nil {
		builder = builder.Where(squirrel.GtOrEq{"ir.generated_at": *since})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.InsightReport, 0)
	for rows.Next() {
		report, err := r.scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning insight report: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reports, nil
}

// ListCompaniesDueForReview retorna empresas com métricas e sem relatório, ou cujo último relatório venceu
func (r *insightReportRepository) ListCompaniesDueForReview(ctx context.Context, now time.Time) ([]string, error) {
	latestReports := squirrel.
		Select("company_id", "MAX(next_review_date) AS next_review_date").
		From("insight_reports").
		GroupBy("company_id")

	query, args, err := squirrel.
		Select("DISTINCT cm.company_id").
		From(companyMetricsTable).
		JoinClause(latestReports.Prefix("LEFT JOIN (").Suffix(") lr ON lr.company_id = cm.company_id")).
		Where(squirrel.Or{
			squirrel.Eq{"lr.next_review_date": nil},
			squirrel.LtOrEq{"lr.next_review_date": now},
		}).
		OrderBy("cm.company_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	companyIDs := make([]string, 0)
	for rows.Next() {
		var companyID string
		if err := rows.Scan(&companyID); err != nil {
			return nil, fmt.Errorf("error scanning company ID: %w", err)
		}
		companyIDs = append(companyIDs, companyID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return companyIDs, nil
}

func (r *insightReportRepository) selectReports() squirrel.SelectBuilder {
	return squirrel.
		Select("ir.id, ir.company_id, ir.summary, ir.generated_at, ir.next_review_date, ir.created_at").
		From(insightReportsTable).
		PlaceholderFormat(squirrel.Dollar)
}

// rowScanner abstrai *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *insightReportRepository) scanReport(row rowScanner) (*domain.InsightReport, error) {
	report := &domain.InsightReport{}
	var summaryJSON []byte

	err := row.Scan(
		&report.ID,
		&report.CompanyID,
		&summaryJSON,
		&report.GeneratedAt,
		&report.NextReviewDate,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if summaryJSON != nil {
		summary := &domain.AIInsightsSummary{}
		if err := json.Unmarshal(summaryJSON, summary); err != nil {
			return nil, fmt.Errorf("error deserializing summary JSON: %w", err)
		}
		report.Summary = summary
	}

	return report, nil
}
