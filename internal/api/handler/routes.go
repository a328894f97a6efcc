package handler

import (
	"net/http"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/api/handler/router"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/scheduler"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/usecases/chatting"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/usecases/insighting"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Insights(service insighting.CombinedInsighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/generate",
			Method:      http.MethodPost,
			Handler:     GenerateInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrExecutive()},
		},
		{
			Path:        "/v1/companies/:id/metrics",
			Method:      http.MethodPost,
			Handler:     SaveCompanyMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrExecutive(), middleware.CompanyScope("id")},
		},
		{
			Path:        "/v1/companies/:id/insights/report",
			Method:      http.MethodPost,
			Handler:     GenerateCompanyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrExecutive(), middleware.CompanyScope("id")},
		},
		{
			Path:        "/v1/companies/:id/insights/report",
			Method:      http.MethodGet,
			Handler:     GetLatestReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ReportReaders(), middleware.CompanyScope("id")},
		},
		{
			Path:        "/v1/companies/:id/insights/history",
			Method:      http.MethodGet,
			Handler:     GetReportHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ReportReaders(), middleware.CompanyScope("id")},
		},
	}
}

func Chat(service chatting.Chatter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/chat",
			Method:      http.MethodPost,
			Handler:     ChatWithAI(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/sessions",
			Method:      http.MethodPost,
			Handler:     CreateChatSession(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/sessions/:id/history",
			Method:      http.MethodGet,
			Handler:     GetChatHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(reviewSync scheduler.ReviewSyncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/review/run",
			Method:      http.MethodPost,
			Handler:     RunReviewSync(reviewSync),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(reviewSync),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
