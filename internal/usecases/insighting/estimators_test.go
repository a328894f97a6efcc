package insighting

import (
	"testing"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTurnoverSavings(t *testing.T) {
	tests := []struct {
		name          string
		retentionRate float64
		turnoverCost  float64
		want          float64
	}{
		{name: "improvement capped at 15 points", retentionRate: 0.50, turnoverCost: 10000, want: 0.15 * 10000 * 100},
		{name: "half of current turnover", retentionRate: 0.90, turnoverCost: 20000, want: 0.05 * 20000 * 100},
		{name: "full retention saves nothing", retentionRate: 1, turnoverCost: 20000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTurnoverSavings(domain.CompanyMetrics{
				RetentionRate: tt.retentionRate,
				TurnoverCost:  tt.turnoverCost,
			})

			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestCalculateTrainingROI(t *testing.T) {
	assert.InDelta(t, 25000.0, CalculateTrainingROI(domain.CompanyMetrics{TrainingCompletionRate: 0.75}), 1e-6)
	assert.InDelta(t, 100000.0, CalculateTrainingROI(domain.CompanyMetrics{TrainingCompletionRate: 0}), 1e-6)
	assert.InDelta(t, 0.0, CalculateTrainingROI(domain.CompanyMetrics{TrainingCompletionRate: 1}), 1e-6)
}

func TestCalculateProductivityGains(t *testing.T) {
	t.Run("default revenue per employee", func(t *testing.T) {
		got := CalculateProductivityGains(domain.CompanyMetrics{})

		assert.InDelta(t, 0.25*domain.DefaultRevenuePerEmployee*50, got, 1e-6)
	})

	t.Run("reported revenue per employee", func(t *testing.T) {
		revenue := 200000.0
		got := CalculateProductivityGains(domain.CompanyMetrics{RevenuePerEmployee: &revenue})

		assert.InDelta(t, 2500000.0, got, 1e-6)
	})
}
