package insighting

import (
	"math"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
)

// Premissas fixas dos estimadores. Não derivam do company_size da requisição.
const (
	assumedTurnoverHeadcount     = 100
	assumedProductivityHeadcount = 50
	assumedAnnualTrainingBudget  = 250000.0

	maxTurnoverImprovement = 0.15
	trainingWasteFactor    = 0.4
	productivityGain       = 0.25
)

// CalculateTurnoverSavings estima a economia anual ao reduzir pela metade o turnover, até 15 p.p.
func CalculateTurnoverSavings(metrics domain.CompanyMetrics) float64 {
	currentTurnover := 1 - metrics.RetentionRate
	improvement := math.Min(maxTurnoverImprovement, currentTurnover*0.5)

	return improvement * metrics.TurnoverCost * assumedTurnoverHeadcount
}

// CalculateTrainingROI estima o desperdício do orçamento de treinamento causado por não conclusão
func CalculateTrainingROI(metrics domain.CompanyMetrics) float64 {
	waste := (1 - metrics.TrainingCompletionRate) * trainingWasteFactor

	return waste * assumedAnnualTrainingBudget
}

func CalculateProductivityGains(metrics domain.CompanyMetrics) float64 {
	return productivityGain * metrics.Revenue() * assumedProductivityHeadcount
}
