package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/usecases/insighting"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/apiErrors"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/log"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/utils"
)

// GenerateInsights calcula o resumo de insights a partir das métricas enviadas no corpo
func GenerateInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := readBody(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "request body is required", nil)
			return
		}

		var request domain.GenerateInsightsRequest
		if err := json.Unmarshal(body, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body", err.Error())
			return
		}

		if request.CompanyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "company_id is required", nil)
			return
		}

		missing, err := missingMetricFields(body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid metrics object", err.Error())
			return
		}
		if len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "required metrics are missing", map[string]any{"fields": missing})
			return
		}

		if !requireCompanyAccess(w, r, request.CompanyID) {
			return
		}

		summary := service.GenerateInsights(&request)

		logger.WithFields(log.Fields{
			"company_id":    request.CompanyID,
			"health_score":  summary.OverallHealthScore,
			"opportunities": len(summary.TopOpportunities),
		}).Info("insights: summary generated")

		respondJSON(w, r, http.StatusOK, summary)
	})
}

type saveMetricsRequest struct {
	Metrics         domain.CompanyMetrics `json:"metrics"`
	IndustryContext string                `json:"industry_context"`
	CompanySize     string                `json:"company_size"`
	Priorities      []string              `json:"priorities"`
	RecordedAt      *time.Time            `json:"recorded_at,omitempty"`
}

// SaveCompanyMetrics registra um snapshot de métricas para a empresa do path
func SaveCompanyMetrics(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		body, err := readBody(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "request body is required", nil)
			return
		}

		var request saveMetricsRequest
		if err := json.Unmarshal(body, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body", err.Error())
			return
		}

		missing, err := missingMetricFields(body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid metrics object", err.Error())
			return
		}
		if len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "required metrics are missing", map[string]any{"fields": missing})
			return
		}

		snapshot := &domain.CompanyMetricsSnapshot{
			CompanyID:       companyID,
			Metrics:         request.Metrics,
			IndustryContext: request.IndustryContext,
			CompanySize:     request.CompanySize,
			Priorities:      request.Priorities,
		}
		if request.RecordedAt != nil {
			snapshot.RecordedAt = *request.RecordedAt
		}

		saved, err := service.SaveMetricsSnapshot(r.Context(), snapshot)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("company_id", companyID).Error("insights: failed to save metrics")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		respondJSON(w, r, http.StatusCreated, saved)
	})
}

// GenerateCompanyReport gera e persiste um relatório a partir do último snapshot
func GenerateCompanyReport(service insighting.ReportGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.GenerateCompanyReport(r.Context(), companyID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("company_id", companyID).Warn("insights: report generation failed")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		respondJSON(w, r, http.StatusCreated, report)
	})
}

func GetLatestReport(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.GetLatestReport(r.Context(), companyID)
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		respondJSON(w, r, http.StatusOK, report)
	})
}

// GetReportHistory lista os relatórios da empresa; ?since=YYYY-MM-DD filtra pela data de geração
func GetReportHistory(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var since *time.Time
		if raw := r.URL.Query().Get("since"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "since must be in YYYY-MM-DD format", nil)
				return
			}
			since = parsed
		}

		reports, err := service.ListReports(r.Context(), companyID, since)
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		respondJSON(w, r, http.StatusOK, reports)
	})
}
