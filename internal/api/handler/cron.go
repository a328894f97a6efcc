package handler

import (
	"net/http"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/scheduler"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/apiErrors"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/log"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/middleware"
)

// RunReviewSync dispara manualmente a revisão dos relatórios vencidos
func RunReviewSync(reviewSync scheduler.ReviewSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if reviewSync == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "review sync service is not available", nil)
			return
		}

		if !reviewSync.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "review sync is already running", nil)
			return
		}

		if claims, ok := middleware.GetClaims(r.Context()); ok {
			logger = logger.WithField("user_id", claims.UserID)
		}
		logger.Info("cron: review sync triggered manually")

		respondJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "review sync started",
			"type":    "review",
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(reviewSync scheduler.ReviewSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reviewSync == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "review sync service is not available", nil)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]any{
			"review": reviewSync.GetStatus(),
		})
	})
}
