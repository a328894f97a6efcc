package handler

import (
	"bytes"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/autoworkz/senseiiwyze-dashboard/pkg/apiErrors"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/log"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Campos de métricas que precisam estar presentes no corpo; revenue_per_employee é opcional
var requiredMetricFields = []string{
	"retention_rate",
	"engagement_score",
	"productivity_index",
	"training_completion_rate",
	"certification_pass_rate",
	"skill_gap_score",
	"employee_satisfaction",
	"time_to_proficiency",
	"turnover_cost",
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("http: failed to encode response")
	}
}

// readBody lê o corpo inteiro para permitir decodificar mais de uma vez
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, errors.New("empty body")
	}
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if len(body) == 0 {
		return nil, errors.New("empty body")
	}
	return body, nil
}

// missingMetricFields lista os campos obrigatórios ausentes (ou nulos) no objeto "metrics"
func missingMetricFields(body []byte) ([]string, error) {
	var raw struct {
		Metrics map[string]jsoniter.RawMessage `json:"metrics"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	missing := []string{}
	for _, field := range requiredMetricFields {
		value, ok := raw.Metrics[field]
		if !ok || isNullValue(value) {
			missing = append(missing, field)
		}
	}
	return missing, nil
}

// isNullValue trata null explícito como ausente; o jsoniter entrega null como RawMessage vazio
func isNullValue(value jsoniter.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) == 0 || string(trimmed) == "null"
}

// requireCompanyAccess escreve 403 e retorna false quando o usuário não pode acessar a empresa
func requireCompanyAccess(w http.ResponseWriter, r *http.Request, companyID string) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
		return false
	}

	if !claims.CanAccessCompany(companyID) {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id":    claims.UserID,
			"company_id": companyID,
		}).Warn("auth: company access denied")
		apiErrors.WriteError(w, apiErrors.ErrCompanyAccessDenied, "you do not have access to this company", nil)
		return false
	}

	return true
}
