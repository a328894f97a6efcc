package domain

import "time"

type InsightType string

const (
	InsightTypeCostReduction   InsightType = "cost_reduction"
	InsightTypeEfficiencyGain  InsightType = "efficiency_gain"
	InsightTypeRevenueIncrease InsightType = "revenue_increase"
)

type Timeframe string

const (
	TimeframeShortTerm  Timeframe = "short_term"
	TimeframeMediumTerm Timeframe = "medium_term"
	TimeframeLongTerm   Timeframe = "long_term"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type InsightCategory string

const (
	InsightCategoryRetention   InsightCategory = "retention"
	InsightCategoryTraining    InsightCategory = "training"
	InsightCategoryPerformance InsightCategory = "performance"
	InsightCategoryEngagement  InsightCategory = "engagement"
)

type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// ProfitabilityInsight representa uma oportunidade de ganho financeiro identificada nas métricas
type ProfitabilityInsight struct {
	ID             string          `json:"id"`
	Type           InsightType     `json:"type"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	ImpactScore    int             `json:"impact_score"` // 1-10
	Confidence     float64         `json:"confidence"`   // 0-1
	EstimatedValue float64         `json:"estimated_value"`
	Timeframe      Timeframe       `json:"timeframe"`
	ActionItems    []string        `json:"action_items"`
	Priority       Priority        `json:"priority"`
	Category       InsightCategory `json:"category"`
}

type EngagementRecommendation struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	CurrentMetric        float64  `json:"current_metric"`
	TargetMetric         float64  `json:"target_metric"`
	ImprovementPotential float64  `json:"improvement_potential"`
	ImplementationEffort Effort   `json:"implementation_effort"`
	ResourcesNeeded      []string `json:"resources_needed"`
	SuccessMetrics       []string `json:"success_metrics"`
	Timeline             string   `json:"timeline"`
}

type RiskSegment struct {
	Segment    string    `json:"segment"`
	Size       float64   `json:"size"` // percentual do quadro
	RiskLevel  RiskLevel `json:"risk_level"`
	TopFactors []string  `json:"top_factors"`
}

type InterventionStrategy struct {
	Strategy       string  `json:"strategy"`
	TargetSegment  string  `json:"target_segment"`
	ExpectedImpact float64 `json:"expected_impact"`
	CostEstimate   float64 `json:"cost_estimate"`
}

type RetentionAnalysis struct {
	CurrentRate            float64                `json:"current_rate"`
	IndustryBenchmark      float64                `json:"industry_benchmark"`
	RiskSegments           []RiskSegment          `json:"risk_segments"`
	InterventionStrategies []InterventionStrategy `json:"intervention_strategies"`
}

// AIInsightsSummary é o resultado completo de uma análise de insights para uma empresa
type AIInsightsSummary struct {
	CompanyID                 string                     `json:"company_id"`
	GeneratedAt               time.Time                  `json:"generated_at"`
	OverallHealthScore        int                        `json:"overall_health_score"`
	TopOpportunities          []ProfitabilityInsight     `json:"top_opportunities"`
	EngagementRecommendations []EngagementRecommendation `json:"engagement_recommendations"`
	RetentionAnalysis         RetentionAnalysis          `json:"retention_analysis"`
	KeyMetrics                CompanyMetrics             `json:"key_metrics"`
	NextReviewDate            time.Time                  `json:"next_review_date"`
}
