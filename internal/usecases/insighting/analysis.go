package insighting

import (
	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/utils"
)

const (
	strengthScore = 80.0
	weaknessScore = 60.0
)

// metricAnalysis classifica as métricas pontuadas. Usado apenas para diagnóstico em log,
// não faz parte do AIInsightsSummary.
type metricAnalysis struct {
	Strengths     []string           `json:"strengths"`
	Weaknesses    []string           `json:"weaknesses"`
	Opportunities []string           `json:"opportunities"`
	Scores        map[string]float64 `json:"scores"`
}

func analyzeMetrics(metrics domain.CompanyMetrics) metricAnalysis {
	analysis := metricAnalysis{
		Strengths:     []string{},
		Weaknesses:    []string{},
		Opportunities: []string{},
		Scores:        make(map[string]float64, len(healthMetrics)),
	}

	for _, metric := range healthMetrics {
		score := ScoreMetric(metric.value(metrics), metric.band.threshold, metric.band.excellent)
		analysis.Scores[metric.name] = utils.RoundWithTwoDecimalPlace(score)

		switch {
		case score >= strengthScore:
			analysis.Strengths = append(analysis.Strengths, metric.name)
		case score < weaknessScore:
			analysis.Weaknesses = append(analysis.Weaknesses, metric.name)
		default:
			analysis.Opportunities = append(analysis.Opportunities, metric.name)
		}
	}

	return analysis
}
