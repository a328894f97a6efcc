package domain

import "time"

// DefaultRevenuePerEmployee é usado quando a empresa não informa receita por colaborador
const DefaultRevenuePerEmployee = 150000.0

// CompanyMetrics reúne as métricas de força de trabalho avaliadas pelo motor de insights.
// Taxas são frações em [0,1], scores e índices ficam em [0,100]. Nenhum valor é limitado aqui.
type CompanyMetrics struct {
	RetentionRate          float64  `json:"retention_rate"`
	EngagementScore        float64  `json:"engagement_score"`
	ProductivityIndex      float64  `json:"productivity_index"`
	TrainingCompletionRate float64  `json:"training_completion_rate"`
	CertificationPassRate  float64  `json:"certification_pass_rate"`
	SkillGapScore          float64  `json:"skill_gap_score"`
	EmployeeSatisfaction   float64  `json:"employee_satisfaction"`
	RevenuePerEmployee     *float64 `json:"revenue_per_employee,omitempty"`
	TimeToProficiency      float64  `json:"time_to_proficiency"`
	TurnoverCost           float64  `json:"turnover_cost"`
}

// Revenue retorna a receita por colaborador ou DefaultRevenuePerEmployee quando ausente
func (m CompanyMetrics) Revenue() float64 {
	if m.RevenuePerEmployee == nil {
		return DefaultRevenuePerEmployee
	}
	return *m.RevenuePerEmployee
}

// Snapshot retorna uma cópia que não compartilha memória com m
func (m CompanyMetrics) Snapshot() CompanyMetrics {
	out := m
	if m.RevenuePerEmployee != nil {
		revenue := *m.RevenuePerEmployee
		out.RevenuePerEmployee = &revenue
	}
	return out
}

type GenerateInsightsRequest struct {
	CompanyID       string         `json:"company_id"`
	Metrics         CompanyMetrics `json:"metrics"`
	IndustryContext string         `json:"industry_context"`
	CompanySize     string         `json:"company_size"`
	Priorities      []string       `json:"priorities"`
}

// CompanyMetricsSnapshot é uma medição persistida das métricas de uma empresa
type CompanyMetricsSnapshot struct {
	ID              string         `json:"id"`
	CompanyID       string         `json:"company_id"`
	Metrics         CompanyMetrics `json:"metrics"`
	IndustryContext string         `json:"industry_context"`
	CompanySize     string         `json:"company_size"`
	Priorities      []string       `json:"priorities"`
	RecordedAt      time.Time      `json:"recorded_at"`
}

// ToRequest monta a requisição de geração de insights a partir do snapshot
func (s *CompanyMetricsSnapshot) ToRequest() *GenerateInsightsRequest {
	priorities := make([]string, len(s.Priorities))
	copy(priorities, s.Priorities)

	return &GenerateInsightsRequest{
		CompanyID:       s.CompanyID,
		Metrics:         s.Metrics.Snapshot(),
		IndustryContext: s.IndustryContext,
		CompanySize:     s.CompanySize,
		Priorities:      priorities,
	}
}
