package insighting

import (
	"fmt"
	"math"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
)

const (
	engagementRecommendationCutoff = 75.0
	engagementTargetCeiling        = 85.0
	engagementTargetUplift         = 15.0

	// TODO: confirmar com produto se deveria ser target - current
	engagementImprovementPotential = 20.0
)

// GenerateEngagementRecommendations gera no máximo uma recomendação quando o engajamento está abaixo do corte.
// O alvo é sempre maior que o valor atual porque o corte (75) fica abaixo do teto (85).
func (s *Service) GenerateEngagementRecommendations(request *domain.GenerateInsightsRequest) []domain.EngagementRecommendation {
	current := request.Metrics.EngagementScore
	if current >= engagementRecommendationCutoff {
		return []domain.EngagementRecommendation{}
	}

	return []domain.EngagementRecommendation{
		{
			ID:    s.newID("engagement"),
			Title: "Strengthen Employee Engagement",
			Description: fmt.Sprintf(
				"Engagement score of %.1f is below the 75 benchmark. Recognition, feedback and growth initiatives can lift it within two quarters.",
				current,
			),
			CurrentMetric:        current,
			TargetMetric:         math.Min(engagementTargetCeiling, current+engagementTargetUplift),
			ImprovementPotential: engagementImprovementPotential,
			ImplementationEffort: domain.EffortMedium,
			ResourcesNeeded: []string{
				"Employee recognition platform",
				"Manager coaching program",
				"Pulse survey tooling",
				"Internal communications budget",
			},
			SuccessMetrics: []string{
				"Engagement score increase",
				"Pulse survey participation rate",
				"Voluntary turnover reduction",
				"Internal mobility rate",
			},
			Timeline: "3-6 months",
		},
	}
}
