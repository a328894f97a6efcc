package insighting

import (
	"math"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/utils"
)

// metricBand define o limiar mínimo aceitável e o ponto de excelência de uma métrica.
// threshold < excellent deve valer para toda banda.
type metricBand struct {
	threshold float64
	excellent float64
}

type weightedMetric struct {
	name   string
	band   metricBand
	weight float64
	value  func(domain.CompanyMetrics) float64
}

// healthMetrics lista as métricas que compõem o health score; os pesos somam 1.00
var healthMetrics = []weightedMetric{
	{name: "retention", band: metricBand{0.75, 0.90}, weight: 0.25, value: func(m domain.CompanyMetrics) float64 { return m.RetentionRate }},
	{name: "engagement", band: metricBand{60, 85}, weight: 0.20, value: func(m domain.CompanyMetrics) float64 { return m.EngagementScore }},
	{name: "training", band: metricBand{0.70, 0.90}, weight: 0.20, value: func(m domain.CompanyMetrics) float64 { return m.TrainingCompletionRate }},
	{name: "productivity", band: metricBand{70, 90}, weight: 0.15, value: func(m domain.CompanyMetrics) float64 { return m.ProductivityIndex }},
	{name: "certification", band: metricBand{0.70, 0.90}, weight: 0.10, value: func(m domain.CompanyMetrics) float64 { return m.CertificationPassRate }},
	{name: "satisfaction", band: metricBand{60, 85}, weight: 0.10, value: func(m domain.CompanyMetrics) float64 { return m.EmployeeSatisfaction }},
}

// ScoreMetric normaliza um valor bruto para a escala 0-100.
// Abaixo do threshold a nota vai de 0 a 60, entre threshold e excellent vai de 60 a 100.
func ScoreMetric(value, threshold, excellent float64) float64 {
	if value >= excellent {
		return 100
	}

	if value >= threshold {
		return 60 + ((value-threshold)/(excellent-threshold))*40
	}

	return utils.Clamp((value/threshold)*60, 0, 60)
}

// CalculateHealthScore combina as seis métricas ponderadas em uma nota geral arredondada
func CalculateHealthScore(metrics domain.CompanyMetrics) int {
	var total float64
	for _, metric := range healthMetrics {
		total += ScoreMetric(metric.value(metrics), metric.band.threshold, metric.band.excellent) * metric.weight
	}

	return int(math.Round(total))
}
