package api

import (
	"net/http"
	"time"

	"ubikais/mirror/internal/common"
	"ubikais/mirror/internal/crawler"
	"ubikais/mirror/internal/store"
)

const statusCacheKey = "api:status"

// StatusHandler handles GET /api/status: per-table row counts plus the
// crawler's cycle state. Counts are cached briefly; the status endpoint is
// polled by dashboards and must not hammer the database.
func StatusHandler(st *store.Store, cr *crawler.Crawler, cache *common.CacheService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, _ := cache.GetOrSet(statusCacheKey, 30*time.Second, func() (any, error) {
			return map[string]interface{}{
				"status":  "online",
				"records": st.Stats(r.Context()),
				"crawler": cr.Status(),
			}, nil
		})
		respondWithSuccess(w, http.StatusOK, payload)
	}
}
