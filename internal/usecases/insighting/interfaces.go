package insighting

import (
	"context"
	"time"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
)

// Insighter define o cálculo puro de insights a partir de métricas
type Insighter interface {
	// GenerateInsights monta o resumo completo (health score, oportunidades, recomendações e retenção)
	GenerateInsights(request *domain.GenerateInsightsRequest) *domain.AIInsightsSummary
}

// ReportGenerator gera e persiste relatórios a partir do último snapshot de métricas da empresa
//
//go:generate mockgen -source=interfaces.go -destination=mocks/insighter_mock.go -package=mocks
type ReportGenerator interface {
	GenerateCompanyReport(ctx context.Context, companyID string) (*domain.InsightReport, error)
}

// CombinedInsighter é a interface completa exposta para a camada HTTP
type CombinedInsighter interface {
	Insighter
	ReportGenerator

	// SaveMetricsSnapshot registra uma nova medição das métricas da empresa
	SaveMetricsSnapshot(ctx context.Context, snapshot *domain.CompanyMetricsSnapshot) (*domain.CompanyMetricsSnapshot, error)

	// GetLatestReport retorna o relatório mais recente da empresa
	GetLatestReport(ctx context.Context, companyID string) (*domain.InsightReport, error)

	// ListReports retorna o histórico de relatórios, opcionalmente a partir de uma data
	ListReports(ctx context.Context, companyID string, since *time.Time) ([]*domain.InsightReport, error)
}
