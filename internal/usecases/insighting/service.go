package insighting

import (
	"context"
	"strings"
	"time"

	"github.com/autoworkz/senseiiwyze-dashboard/infrastructure/repository"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/apiErrors"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Service implementa CombinedInsighter. O cálculo de insights não tem estado;
// os repositórios só são usados nas operações de snapshot e relatório.
type Service struct {
	metricsRepository repository.CompanyMetricsRepository
	reportRepository  repository.InsightReportRepository
	now               func() time.Time
	idGenerator       func() string
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	metricsRepository repository.CompanyMetricsRepository,
	reportRepository repository.InsightReportRepository,
) CombinedInsighter {
	return &Service{
		metricsRepository: metricsRepository,
		reportRepository:  reportRepository,
		now:               time.Now,
		idGenerator:       uuid.NewString,
	}
}

// WithClock substitui o relógio usado em timestamps e datas de revisão
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithIDGenerator substitui o gerador do sufixo dos IDs de insights e recomendações
func (s *Service) WithIDGenerator(generator func() string) *Service {
	s.idGenerator = generator
	return s
}

// newID mantém o prefixo legível (ex: retention-<uuid>)
func (s *Service) newID(prefix string) string {
	return prefix + "-" + s.idGenerator()
}

// GenerateInsights monta o AIInsightsSummary. Não faz I/O e não altera a requisição.
func (s *Service) GenerateInsights(request *domain.GenerateInsightsRequest) *domain.AIInsightsSummary {
	analysis := analyzeMetrics(request.Metrics)
	logrus.WithFields(logrus.Fields{
		"company_id":    request.CompanyID,
		"strengths":     strings.Join(analysis.Strengths, ","),
		"weaknesses":    strings.Join(analysis.Weaknesses, ","),
		"opportunities": strings.Join(analysis.Opportunities, ","),
		"scores":        analysis.Scores,
	}).Debug("insights: metric analysis")

	opportunities := s.GenerateProfitabilityInsights(request)
	recommendations := s.GenerateEngagementRecommendations(request)
	retention := s.AnalyzeRetention(request)
	healthScore := CalculateHealthScore(request.Metrics)

	now := s.now()

	return &domain.AIInsightsSummary{
		CompanyID:                 request.CompanyID,
		GeneratedAt:               now,
		OverallHealthScore:        healthScore,
		TopOpportunities:          opportunities,
		EngagementRecommendations: recommendations,
		RetentionAnalysis:         retention,
		KeyMetrics:                request.Metrics.Snapshot(),
		NextReviewDate:            now.AddDate(0, 1, 0),
	}
}

// SaveMetricsSnapshot valida e persiste um snapshot de métricas
func (s *Service) SaveMetricsSnapshot(ctx context.Context, snapshot *domain.CompanyMetricsSnapshot) (*domain.CompanyMetricsSnapshot, error) {
	if snapshot == nil || snapshot.CompanyID == "" {
		return nil, NewInsightError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewInsightError(ErrGenerateID, apiErrors.ErrInternalServer, snapshot.CompanyID, err.Error())
	}

	snapshot.ID = id
	if snapshot.RecordedAt.IsZero() {
		snapshot.RecordedAt = s.now()
	}

	if err := s.metricsRepository.Save(ctx, snapshot); err != nil {
		logrus.WithError(err).WithField("company_id", snapshot.CompanyID).Error("insights: failed to save metrics snapshot")
		return nil, NewInsightError(errors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, snapshot.CompanyID, "")
	}

	return snapshot, nil
}

// GenerateCompanyReport gera insights a partir do último snapshot e salva o relatório
func (s *Service) GenerateCompanyReport(ctx context.Context, companyID string) (*domain.InsightReport, error) {
	if companyID == "" {
		return nil, NewInsightError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	snapshot, err := s.metricsRepository.GetLatestByCompanyID(ctx, companyID)
	if err != nil {
		return nil, NewInsightError(errors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, companyID, "")
	}

	if snapshot == nil {
		return nil, NewInsightError(ErrMetricsNotFound, apiErrors.ErrResourceNotFound, companyID, "")
	}

	summary := s.GenerateInsights(snapshot.ToRequest())

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewInsightError(ErrGenerateID, apiErrors.ErrInternalServer, companyID, err.Error())
	}

	report := &domain.InsightReport{
		ID:             id,
		CompanyID:      companyID,
		Summary:        summary,
		GeneratedAt:    summary.GeneratedAt,
		NextReviewDate: summary.NextReviewDate,
	}

	if err := s.reportRepository.Save(ctx, report); err != nil {
		logrus.WithError(err).WithField("company_id", companyID).Error("insights: failed to save insight report")
		return nil, NewInsightError(errors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, companyID, "")
	}

	logrus.WithFields(logrus.Fields{
		"company_id":    companyID,
		"report_id":     report.ID,
		"health_score":  summary.OverallHealthScore,
		"opportunities": len(summary.TopOpportunities),
	}).Info("insights: company report generated")

	return report, nil
}

func (s *Service) GetLatestReport(ctx context.Context, companyID string) (*domain.InsightReport, error) {
	report, err := s.reportRepository.GetLatestByCompanyID(ctx, companyID)
	if err != nil {
		return nil, NewInsightError(errors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, companyID, "")
	}

	if report == nil {
		return nil, NewInsightError(ErrReportNotFound, apiErrors.ErrResourceNotFound, companyID, "")
	}

	return report, nil
}

func (s *Service) ListReports(ctx context.Context, companyID string, since *time.Time) ([]*domain.InsightReport, error) {
	reports, err := s.reportRepository.ListByCompanyID(ctx, companyID, since)
	if err != nil {
		return nil, NewInsightError(errors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, companyID, "")
	}

	if reports == nil {
		reports = []*domain.InsightReport{}
	}

	return reports, nil
}
