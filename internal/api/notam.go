package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ubikais/mirror/internal/store"
)

// NotamHandler handles GET /api/notam: FIR-scope NOTAMs, filterable by
// series and location fragment.
func NotamHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		series := r.URL.Query().Get("type")
		location := r.URL.Query().Get("location")
		limit := intParam(r, "limit", store.DefaultNotamLimit)

		notams, err := st.NotamsFIR(r.Context(), series, location, limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, map[string]interface{}{
			"count":  len(notams),
			"notams": notams,
		})
	}
}

// NotamByLocationHandler handles GET /api/notam/{location}: aerodrome-scope
// NOTAMs for one airport.
func NotamByLocationHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		location := chi.URLParam(r, "location")
		limit := intParam(r, "limit", 50)

		notams, err := st.NotamsByAirport(r.Context(), location, limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, map[string]interface{}{
			"location": location,
			"count":    len(notams),
			"notams":   notams,
		})
	}
}
