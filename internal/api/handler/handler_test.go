package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/api/handler/router"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	chatmocks "github.com/autoworkz/senseiiwyze-dashboard/internal/usecases/chatting/mocks"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/usecases/insighting"
	insightmocks "github.com/autoworkz/senseiiwyze-dashboard/internal/usecases/insighting/mocks"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/apiErrors"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/middleware"
)

var (
	adminClaims     = &domain.Claims{UserID: "u-admin", Role: domain.RoleAdmin}
	executiveClaims = &domain.Claims{UserID: "u-exec", Role: domain.RoleExecutive, CompanyID: "acme"}
	coachClaims     = &domain.Claims{UserID: "u-coach", Role: domain.RoleCoach, CompanyID: "acme"}
	learnerClaims   = &domain.Claims{UserID: "u-learner", Role: domain.RoleLearner, CompanyID: "acme"}
)

const validMetricsBody = `{
	"company_id": "acme",
	"metrics": {
		"retention_rate": 0.7,
		"engagement_score": 80,
		"productivity_index": 85,
		"training_completion_rate": 0.75,
		"certification_pass_rate": 0.8,
		"skill_gap_score": 30,
		"employee_satisfaction": 75,
		"time_to_proficiency": 90,
		"turnover_cost": 50000
	}
}`

// stubReviewSync simula o agendador para os handlers de cron
type stubReviewSync struct {
	accept bool
	calls  int
}

func (s *stubReviewSync) TriggerManualSync() bool {
	s.calls++
	return s.accept
}

func (s *stubReviewSync) GetStatus() map[string]any {
	return map[string]any{"sync_running": !s.accept}
}

type testServer struct {
	insighter *insightmocks.MockCombinedInsighter
	chatter   *chatmocks.MockChatter
	review    *stubReviewSync
	handler   http.Handler
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	ts := &testServer{
		insighter: insightmocks.NewMockCombinedInsighter(ctrl),
		chatter:   chatmocks.NewMockChatter(ctrl),
		review:    &stubReviewSync{accept: true},
	}

	ts.handler = router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Insights(ts.insighter)...),
		router.WithRoutes(Chat(ts.chatter)...),
		router.WithRoutes(CronJobs(ts.review)...),
	)
	return ts
}

func (ts *testServer) do(t *testing.T, claims *domain.Claims, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, nil, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestGenerateInsights(t *testing.T) {
	t.Run("returns the summary", func(t *testing.T) {
		ts := newTestServer(t)
		ts.insighter.EXPECT().
			GenerateInsights(gomock.Any()).
			DoAndReturn(func(request *domain.GenerateInsightsRequest) *domain.AIInsightsSummary {
				assert.Equal(t, "acme", request.CompanyID)
				assert.Equal(t, 0.7, request.Metrics.RetentionRate)
				assert.Nil(t, request.Metrics.RevenuePerEmployee)
				return &domain.AIInsightsSummary{CompanyID: "acme", OverallHealthScore: 72}
			})

		rec := ts.do(t, executiveClaims, http.MethodPost, "/v1/insights/generate", validMetricsBody)

		require.Equal(t, http.StatusOK, rec.Code)
		var summary domain.AIInsightsSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		assert.Equal(t, 72, summary.OverallHealthScore)
	})

	t.Run("missing metric fields", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, adminClaims, http.MethodPost, "/v1/insights/generate",
			`{"company_id":"acme","metrics":{"retention_rate":0.7,"engagement_score":null}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
		assert.Contains(t, rec.Body.String(), "engagement_score")
		assert.NotContains(t, rec.Body.String(), "revenue_per_employee")
	})

	t.Run("null metric with every other field present", func(t *testing.T) {
		ts := newTestServer(t)

		body := strings.Replace(validMetricsBody, `"engagement_score": 80`, `"engagement_score": null`, 1)
		rec := ts.do(t, adminClaims, http.MethodPost, "/v1/insights/generate", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
		assert.Contains(t, rec.Body.String(), `"engagement_score"`)
		assert.NotContains(t, rec.Body.String(), `"retention_rate"`)
	})

	t.Run("missing company id", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, adminClaims, http.MethodPost, "/v1/insights/generate", `{"metrics":{}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, adminClaims, http.MethodPost, "/v1/insights/generate", `{"company_id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("other company is denied", func(t *testing.T) {
		ts := newTestServer(t)
		claims := &domain.Claims{UserID: "u-2", Role: domain.RoleExecutive, CompanyID: "globex"}

		rec := ts.do(t, claims, http.MethodPost, "/v1/insights/generate", validMetricsBody)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrCompanyAccessDenied, decodeError(t, rec).Code)
	})

	t.Run("coach cannot generate", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, coachClaims, http.MethodPost, "/v1/insights/generate", validMetricsBody)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestSaveCompanyMetrics(t *testing.T) {
	ts := newTestServer(t)
	ts.insighter.EXPECT().
		SaveMetricsSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *domain.CompanyMetricsSnapshot) (*domain.CompanyMetricsSnapshot, error) {
			assert.Equal(t, "acme", snapshot.CompanyID)
			assert.Equal(t, 85.0, snapshot.Metrics.ProductivityIndex)
			snapshot.ID = "abc123"
			return snapshot, nil
		})

	rec := ts.do(t, executiveClaims, http.MethodPost, "/v1/companies/acme/metrics", validMetricsBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"abc123"`)
}

func TestSaveCompanyMetricsRejectsNullMetric(t *testing.T) {
	ts := newTestServer(t)

	body := strings.Replace(validMetricsBody, `"engagement_score": 80`, `"engagement_score": null`, 1)
	rec := ts.do(t, executiveClaims, http.MethodPost, "/v1/companies/acme/metrics", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	assert.Contains(t, rec.Body.String(), "engagement_score")
}

func TestCompanyReportEndpoints(t *testing.T) {
	report := &domain.InsightReport{
		ID:        "rep001",
		CompanyID: "acme",
		Summary:   &domain.AIInsightsSummary{CompanyID: "acme", OverallHealthScore: 48},
	}

	t.Run("generate report", func(t *testing.T) {
		ts := newTestServer(t)
		ts.insighter.EXPECT().GenerateCompanyReport(gomock.Any(), "acme").Return(report, nil)

		rec := ts.do(t, executiveClaims, http.MethodPost, "/v1/companies/acme/insights/report", "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"overall_health_score":48`)
	})

	t.Run("generate report without metrics", func(t *testing.T) {
		ts := newTestServer(t)
		ts.insighter.EXPECT().GenerateCompanyReport(gomock.Any(), "acme").
			Return(nil, insighting.NewInsightError(insighting.ErrMetricsNotFound, apiErrors.ErrResourceNotFound, "acme", ""))

		rec := ts.do(t, adminClaims, http.MethodPost, "/v1/companies/acme/insights/report", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)
	})

	t.Run("coach reads latest report", func(t *testing.T) {
		ts := newTestServer(t)
		ts.insighter.EXPECT().GetLatestReport(gomock.Any(), "acme").Return(report, nil)

		rec := ts.do(t, coachClaims, http.MethodGet, "/v1/companies/acme/insights/report", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("learner cannot read reports", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, learnerClaims, http.MethodGet, "/v1/companies/acme/insights/report", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("history with since", func(t *testing.T) {
		ts := newTestServer(t)
		ts.insighter.EXPECT().
			ListReports(gomock.Any(), "acme", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, since *time.Time) ([]*domain.InsightReport, error) {
				require.NotNil(t, since)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *since)
				return []*domain.InsightReport{report}, nil
			})

		rec := ts.do(t, coachClaims, http.MethodGet, "/v1/companies/acme/insights/history?since=2024-01-01", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "rep001")
	})

	t.Run("history without since", func(t *testing.T) {
		ts := newTestServer(t)
		ts.insighter.EXPECT().
			ListReports(gomock.Any(), "acme", (*time.Time)(nil)).
			Return([]*domain.InsightReport{}, nil)

		rec := ts.do(t, adminClaims, http.MethodGet, "/v1/companies/acme/insights/history", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("history with invalid since", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, adminClaims, http.MethodGet, "/v1/companies/acme/insights/history?since=01/01/2024", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})
}

func TestChatEndpoints(t *testing.T) {
	t.Run("chat with ai", func(t *testing.T) {
		ts := newTestServer(t)
		ts.chatter.EXPECT().
			ChatWithAI(&domain.ChatRequest{SessionID: "s1", Message: "How is retention?"}).
			Return(&domain.ChatResponse{Message: "retention is fine", FollowUpQuestions: []string{"?"}})

		rec := ts.do(t, learnerClaims, http.MethodPost, "/v1/chat", `{"session_id":"s1","message":"How is retention?"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "retention is fine")
	})

	t.Run("create session", func(t *testing.T) {
		ts := newTestServer(t)
		topic := "onboarding"
		ts.chatter.EXPECT().
			CreateChatSession(gomock.Any(), "acme", &topic).
			Return(&domain.ChatSession{ID: "chat-acme-1", CompanyID: "acme", Status: domain.ChatSessionStatusActive, Messages: []domain.ChatMessage{}}, nil)

		rec := ts.do(t, learnerClaims, http.MethodPost, "/v1/chat/sessions", `{"company_id":"acme","topic":"onboarding"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "chat-acme-1")
	})

	t.Run("create session for another company", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, learnerClaims, http.MethodPost, "/v1/chat/sessions", `{"company_id":"globex"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("create session without company", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, learnerClaims, http.MethodPost, "/v1/chat/sessions", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("history of unknown session is empty", func(t *testing.T) {
		ts := newTestServer(t)
		ts.chatter.EXPECT().GetChatSession(gomock.Any(), "missing").Return(nil, nil)
		ts.chatter.EXPECT().GetChatHistory(gomock.Any(), "missing").Return([]domain.ChatMessage{}, nil)

		rec := ts.do(t, learnerClaims, http.MethodGet, "/v1/chat/sessions/missing/history", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("history of another company session", func(t *testing.T) {
		ts := newTestServer(t)
		ts.chatter.EXPECT().GetChatSession(gomock.Any(), "chat-globex-1").
			Return(&domain.ChatSession{ID: "chat-globex-1", CompanyID: "globex"}, nil)

		rec := ts.do(t, learnerClaims, http.MethodGet, "/v1/chat/sessions/chat-globex-1/history", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("history lookup fails", func(t *testing.T) {
		ts := newTestServer(t)
		ts.chatter.EXPECT().GetChatSession(gomock.Any(), "s1").Return(nil, errors.New("db down"))

		rec := ts.do(t, adminClaims, http.MethodGet, "/v1/chat/sessions/s1/history", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCronEndpoints(t *testing.T) {
	t.Run("manual run", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, adminClaims, http.MethodPost, "/v1/cron/review/run", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, ts.review.calls)
	})

	t.Run("already running", func(t *testing.T) {
		ts := newTestServer(t)
		ts.review.accept = false

		rec := ts.do(t, adminClaims, http.MethodPost, "/v1/cron/review/run", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrConflict, decodeError(t, rec).Code)
	})

	t.Run("status", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, adminClaims, http.MethodGet, "/v1/cron/status", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"review":{"sync_running":false}}`, rec.Body.String())
	})

	t.Run("executive cannot run", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, executiveClaims, http.MethodPost, "/v1/cron/review/run", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, ts.review.calls)
	})
}
