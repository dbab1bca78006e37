package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"ubikais/mirror/internal/common"
	"ubikais/mirror/internal/store"
)

const airportsCacheKey = "api:airports"

// AirportsHandler handles GET /api/airports. Aerodrome reference data only
// changes on full crawls, so the listing is cached.
func AirportsHandler(st *store.Store, cache *common.CacheService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := cache.GetOrSet(airportsCacheKey, 5*time.Minute, func() (any, error) {
			airports, err := st.Airports(r.Context())
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{
				"count":    len(airports),
				"airports": airports,
			}, nil
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, payload)
	}
}

// AirportInfoHandler handles GET /api/airports/{icao}.
func AirportInfoHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		icao := strings.ToUpper(chi.URLParam(r, "icao"))

		airport, err := st.AirportByICAO(r.Context(), icao)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if airport == nil {
			respondWithError(w, http.StatusNotFound, "Airport "+icao+" not found")
			return
		}
		respondWithSuccess(w, http.StatusOK, airport)
	}
}
