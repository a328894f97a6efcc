package insighting

import "github.com/autoworkz/senseiiwyze-dashboard/internal/domain"

const industryRetentionBenchmark = 0.87

// retentionRiskSegments e retentionInterventions são tabelas fixas até existir segmentação por coorte
var retentionRiskSegments = []domain.RiskSegment{
	{
		Segment:    "New Hires (0-6 months)",
		Size:       15,
		RiskLevel:  domain.RiskLevelHigh,
		TopFactors: []string{"Onboarding experience", "Role clarity", "Team integration"},
	},
	{
		Segment:    "Mid-Level Contributors",
		Size:       45,
		RiskLevel:  domain.RiskLevelMedium,
		TopFactors: []string{"Career progression", "Compensation", "Workload balance"},
	},
	{
		Segment:    "Senior Staff",
		Size:       40,
		RiskLevel:  domain.RiskLevelLow,
		TopFactors: []string{"Recognition", "Autonomy", "Strategic involvement"},
	},
}

var retentionInterventions = []domain.InterventionStrategy{
	{
		Strategy:       "Structured 90-day onboarding with mentors",
		TargetSegment:  "New Hires (0-6 months)",
		ExpectedImpact: 0.25,
		CostEstimate:   50000,
	},
	{
		Strategy:       "Career pathing and skills-based promotion framework",
		TargetSegment:  "Mid-Level Contributors",
		ExpectedImpact: 0.18,
		CostEstimate:   75000,
	},
}

// AnalyzeRetention monta a análise de retenção a partir da taxa atual
func (s *Service) AnalyzeRetention(request *domain.GenerateInsightsRequest) domain.RetentionAnalysis {
	segments := make([]domain.RiskSegment, len(retentionRiskSegments))
	for i, segment := range retentionRiskSegments {
		segment.TopFactors = append([]string(nil), segment.TopFactors...)
		segments[i] = segment
	}

	strategies := make([]domain.InterventionStrategy, len(retentionInterventions))
	copy(strategies, retentionInterventions)

	return domain.RetentionAnalysis{
		CurrentRate:            request.Metrics.RetentionRate,
		IndustryBenchmark:      industryRetentionBenchmark,
		RiskSegments:           segments,
		InterventionStrategies: strategies,
	}
}
