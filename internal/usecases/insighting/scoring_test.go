package insighting

import (
	"testing"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestScoreMetric_Boundaries(t *testing.T) {
	for _, metric := range healthMetrics {
		t.Run(metric.name, func(t *testing.T) {
			threshold, excellent := metric.band.threshold, metric.band.excellent

			assert.Equal(t, 100.0, ScoreMetric(excellent, threshold, excellent))
			assert.Equal(t, 60.0, ScoreMetric(threshold, threshold, excellent))
			assert.Equal(t, 0.0, ScoreMetric(0, threshold, excellent))
			assert.Equal(t, 100.0, ScoreMetric(excellent*2, threshold, excellent))
		})
	}
}

func TestScoreMetric_Interpolation(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		threshold float64
		excellent float64
		want      float64
	}{
		{name: "midpoint of upper band", value: 72.5, threshold: 60, excellent: 85, want: 80},
		{name: "midpoint of lower band", value: 30, threshold: 60, excellent: 85, want: 30},
		{name: "fraction upper band", value: 0.80, threshold: 0.70, excellent: 0.90, want: 80},
		{name: "negative value is clamped", value: -10, threshold: 60, excellent: 85, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScoreMetric(tt.value, tt.threshold, tt.excellent), 1e-9)
		})
	}
}

func TestScoreMetric_BoundedAndMonotonic(t *testing.T) {
	for _, metric := range healthMetrics {
		t.Run(metric.name, func(t *testing.T) {
			threshold, excellent := metric.band.threshold, metric.band.excellent
			step := excellent / 200
			previous := -1.0

			for value := 0.0; value <= excellent*1.5; value += step {
				score := ScoreMetric(value, threshold, excellent)

				assert.GreaterOrEqual(t, score, 0.0, "value %v", value)
				assert.LessOrEqual(t, score, 100.0, "value %v", value)
				assert.GreaterOrEqual(t, score, previous, "score decreased at value %v", value)
				previous = score
			}
		})
	}
}

func TestHealthMetricWeightsSumToOne(t *testing.T) {
	var total float64
	for _, metric := range healthMetrics {
		total += metric.weight
	}

	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestCalculateHealthScore_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		metrics domain.CompanyMetrics
		check   func(t *testing.T, score int)
	}{
		{
			name:    "good metrics",
			metrics: goodMetrics(),
			check: func(t *testing.T, score int) {
				assert.Greater(t, score, 85)
				assert.Equal(t, 100, score)
			},
		},
		{
			name:    "poor metrics",
			metrics: poorMetrics(),
			check: func(t *testing.T, score int) {
				assert.Less(t, score, 60)
				assert.Equal(t, 48, score)
			},
		},
		{
			name:    "zero metrics",
			metrics: domain.CompanyMetrics{},
			check: func(t *testing.T, score int) {
				assert.Equal(t, 0, score)
			},
		},
		{
			name: "everything at threshold",
			metrics: domain.CompanyMetrics{
				RetentionRate:          0.75,
				EngagementScore:        60,
				TrainingCompletionRate: 0.70,
				ProductivityIndex:      70,
				CertificationPassRate:  0.70,
				EmployeeSatisfaction:   60,
			},
			check: func(t *testing.T, score int) {
				assert.Equal(t, 60, score)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, CalculateHealthScore(tt.metrics))
		})
	}
}

func TestCalculateHealthScore_RangeAndOrdering(t *testing.T) {
	previous := -1
	for step := 0; step <= 20; step++ {
		f := float64(step) / 20

		metrics := domain.CompanyMetrics{
			RetentionRate:          f,
			EngagementScore:        f * 100,
			TrainingCompletionRate: f,
			ProductivityIndex:      f * 100,
			CertificationPassRate:  f,
			EmployeeSatisfaction:   f * 100,
		}

		score := CalculateHealthScore(metrics)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
		assert.GreaterOrEqual(t, score, previous, "health score decreased at step %d", step)
		previous = score
	}
}

func TestAnalyzeMetrics_Buckets(t *testing.T) {
	analysis := analyzeMetrics(domain.CompanyMetrics{
		RetentionRate:          0.95,
		EngagementScore:        65,
		TrainingCompletionRate: 0.50,
		ProductivityIndex:      90,
		CertificationPassRate:  0.72,
		EmployeeSatisfaction:   30,
	})

	assert.ElementsMatch(t, []string{"retention", "productivity"}, analysis.Strengths)
	assert.ElementsMatch(t, []string{"training", "satisfaction"}, analysis.Weaknesses)
	assert.ElementsMatch(t, []string{"engagement", "certification"}, analysis.Opportunities)
	assert.Len(t, analysis.Scores, len(healthMetrics))
	assert.Equal(t, 100.0, analysis.Scores["retention"])
}
