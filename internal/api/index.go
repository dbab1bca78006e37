package api

import "net/http"

// IndexHandler handles GET / with a short endpoint listing.
func IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithSuccess(w, http.StatusOK, map[string]interface{}{
			"name":        "UBIKAIS Mirror API",
			"version":     "1.0.0",
			"description": "Korean Aviation Data API",
			"endpoints": []string{
				"GET /api/flights",
				"GET /api/flights/departures",
				"GET /api/flights/arrivals",
				"GET /api/flights/search?flight=KAL123",
				"GET /api/flights/route?callsign=KAL123",
				"GET /api/weather?type=metar",
				"GET /api/weather/metar/{airport}",
				"GET /api/weather/taf/{airport}",
				"GET /api/notam",
				"GET /api/notam/{location}",
				"GET /api/airports",
				"GET /api/airports/{icao}",
				"GET /api/status",
			},
		})
	}
}
