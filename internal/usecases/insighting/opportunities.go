package insighting

import (
	"fmt"
	"sort"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
)

// Cortes que disparam cada regra de oportunidade
const (
	retentionOpportunityCutoff    = 0.85
	trainingOpportunityCutoff     = 0.80
	productivityOpportunityCutoff = 80.0
)

// opportunityRule avalia as métricas e devolve um insight quando a regra dispara
type opportunityRule func(s *Service, metrics domain.CompanyMetrics) *domain.ProfitabilityInsight

// opportunityRules é avaliada nesta ordem; empates de impacto preservam essa ordem
var opportunityRules = []opportunityRule{
	retentionOpportunity,
	trainingOpportunity,
	productivityOpportunity,
}

// GenerateProfitabilityInsights aplica as regras de oportunidade e ordena por impacto decrescente
func (s *Service) GenerateProfitabilityInsights(request *domain.GenerateInsightsRequest) []domain.ProfitabilityInsight {
	insights := make([]domain.ProfitabilityInsight, 0, len(opportunityRules))

	for _, rule := range opportunityRules {
		if insight := rule(s, request.Metrics); insight != nil {
			insights = append(insights, *insight)
		}
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].ImpactScore > insights[j].ImpactScore
	})

	return insights
}

func retentionOpportunity(s *Service, metrics domain.CompanyMetrics) *domain.ProfitabilityInsight {
	if metrics.RetentionRate >= retentionOpportunityCutoff {
		return nil
	}

	return &domain.ProfitabilityInsight{
		ID:    s.newID("retention"),
		Type:  domain.InsightTypeCostReduction,
		Title: "Reduce Employee Turnover Costs",
		Description: fmt.Sprintf(
			"Current retention rate of %.1f%% is below the 85%% target. Targeted retention programs can significantly cut replacement and onboarding costs.",
			metrics.RetentionRate*100,
		),
		ImpactScore:    8,
		Confidence:     0.85,
		EstimatedValue: CalculateTurnoverSavings(metrics),
		Timeframe:      domain.TimeframeMediumTerm,
		ActionItems: []string{
			"Run stay interviews with high-performing employees",
			"Build individual career development plans",
			"Train managers on retention and engagement conversations",
			"Benchmark compensation against the market",
		},
		Priority: domain.PriorityHigh,
		Category: domain.InsightCategoryRetention,
	}
}

func trainingOpportunity(s *Service, metrics domain.CompanyMetrics) *domain.ProfitabilityInsight {
	if metrics.TrainingCompletionRate >= trainingOpportunityCutoff {
		return nil
	}

	return &domain.ProfitabilityInsight{
		ID:    s.newID("training"),
		Type:  domain.InsightTypeEfficiencyGain,
		Title: "Optimize Training Investment",
		Description: fmt.Sprintf(
			"Training completion rate of %.1f%% means a large share of the training budget is not turning into skills. Personalized learning paths can recover that investment.",
			metrics.TrainingCompletionRate*100,
		),
		ImpactScore:    9,
		Confidence:     0.92,
		EstimatedValue: CalculateTrainingROI(metrics),
		Timeframe:      domain.TimeframeShortTerm,
		ActionItems: []string{
			"Introduce personalized learning paths based on skill gaps",
			"Break long courses into microlearning modules",
			"Add completion tracking to manager dashboards",
			"Recognize and reward course completion",
		},
		Priority: domain.PriorityCritical,
		Category: domain.InsightCategoryTraining,
	}
}

func productivityOpportunity(s *Service, metrics domain.CompanyMetrics) *domain.ProfitabilityInsight {
	if metrics.ProductivityIndex >= productivityOpportunityCutoff {
		return nil
	}

	return &domain.ProfitabilityInsight{
		ID:    s.newID("productivity"),
		Type:  domain.InsightTypeRevenueIncrease,
		Title: "Increase Team Productivity",
		Description: fmt.Sprintf(
			"Productivity index of %.1f shows room for improvement. Closing skill gaps and removing workflow friction can raise output per employee.",
			metrics.ProductivityIndex,
		),
		ImpactScore:    7,
		Confidence:     0.78,
		EstimatedValue: CalculateProductivityGains(metrics),
		Timeframe:      domain.TimeframeMediumTerm,
		ActionItems: []string{
			"Map workflow bottlenecks with team leads",
			"Target training at the largest skill gaps",
			"Set clear individual and team performance goals",
			"Review tooling and automation opportunities",
		},
		Priority: domain.PriorityMedium,
		Category: domain.InsightCategoryPerformance,
	}
}
