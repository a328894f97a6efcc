package domain

import "time"

// InsightReport é um AIInsightsSummary persistido para consulta posterior e revisão periódica
type InsightReport struct {
	ID             string             `json:"id"`
	CompanyID      string             `json:"company_id"`
	Summary        *AIInsightsSummary `json:"summary"`
	GeneratedAt    time.Time          `json:"generated_at"`
	NextReviewDate time.Time          `json:"next_review_date"`
	CreatedAt      time.Time          `json:"created_at"`
}

// IsDueForReview indica se a data de revisão já passou
func (r *InsightReport) IsDueForReview(now time.Time) bool {
	return !r.NextReviewDate.After(now)
}
