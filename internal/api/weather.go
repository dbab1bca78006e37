package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ubikais/mirror/internal/store"
)

// WeatherHandler handles GET /api/weather. type= selects metar (default),
// taf, or sigmet.
func WeatherHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weatherType := strings.ToLower(r.URL.Query().Get("type"))
		if weatherType == "" {
			weatherType = "metar"
		}
		airport := r.URL.Query().Get("airport")
		limit := intParam(r, "limit", store.DefaultWeatherLimit)

		var (
			rows []store.Row
			err  error
		)
		switch weatherType {
		case "metar":
			rows, err = st.Metars(r.Context(), airport, limit)
		case "taf":
			rows, err = st.Tafs(r.Context(), airport, limit)
		case "sigmet":
			rows, err = st.Sigmets(r.Context(), limit)
		default:
			respondWithError(w, http.StatusBadRequest, "type must be metar, taf, or sigmet")
			return
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondWithSuccess(w, http.StatusOK, map[string]interface{}{
			"type":    weatherType,
			"count":   len(rows),
			"weather": rows,
		})
	}
}

// MetarHandler handles GET /api/weather/metar/{airport}, returning the
// newest observation for one airport.
func MetarHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		airport := chi.URLParam(r, "airport")

		row, err := st.LatestMetar(r.Context(), airport)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if row == nil {
			respondWithError(w, http.StatusNotFound, "METAR not found for "+airport)
			return
		}
		respondWithSuccess(w, http.StatusOK, row)
	}
}

// TafHandler handles GET /api/weather/taf/{airport}, returning the newest
// forecast for one airport.
func TafHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		airport := chi.URLParam(r, "airport")

		row, err := st.LatestTaf(r.Context(), airport)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if row == nil {
			respondWithError(w, http.StatusNotFound, "TAF not found for "+airport)
			return
		}
		respondWithSuccess(w, http.StatusOK, row)
	}
}
