package api

import (
	"net/http"

	"ubikais/mirror/internal/models"
	"ubikais/mirror/internal/store"
)

// FlightsHandler handles GET /api/flights. The type parameter narrows to
// departures or arrivals.
func FlightsHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		direction := ""
		switch r.URL.Query().Get("type") {
		case "departure":
			direction = models.DirectionDeparture
		case "arrival":
			direction = models.DirectionArrival
		}
		limit := intParam(r, "limit", store.DefaultFlightLimit)

		flights, err := st.FlightPlans(r.Context(), direction, limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, map[string]interface{}{
			"count":   len(flights),
			"flights": flights,
		})
	}
}

// DeparturesHandler handles GET /api/flights/departures.
func DeparturesHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		airport := r.URL.Query().Get("airport")
		limit := intParam(r, "limit", store.DefaultFlightLimit)

		flights, err := st.Departures(r.Context(), airport, limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, map[string]interface{}{
			"count":      len(flights),
			"departures": flights,
		})
	}
}

// ArrivalsHandler handles GET /api/flights/arrivals.
func ArrivalsHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		airport := r.URL.Query().Get("airport")
		limit := intParam(r, "limit", store.DefaultFlightLimit)

		flights, err := st.Arrivals(r.Context(), airport, limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, map[string]interface{}{
			"count":    len(flights),
			"arrivals": flights,
		})
	}
}

// FlightSearchHandler handles GET /api/flights/search. Either flight= or
// callsign= selects the fragment to match.
func FlightSearchHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flight := r.URL.Query().Get("flight")
		if flight == "" {
			flight = r.URL.Query().Get("callsign")
		}
		if flight == "" {
			respondWithError(w, http.StatusBadRequest, "flight parameter required")
			return
		}

		flights, err := st.SearchFlights(r.Context(), flight)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithSuccess(w, http.StatusOK, map[string]interface{}{
			"found":   len(flights) > 0,
			"count":   len(flights),
			"flights": flights,
		})
	}
}

// FlightRouteHandler handles GET /api/flights/route, the lookup used by map
// viewers. Unlike the rest of the API this endpoint answers with a flat
// body, not the envelope: viewers read source and origin at the top level.
// A miss is not an error either; a 200 with null route fields lets the
// viewer fall back to other data sources.
func FlightRouteHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callsign := r.URL.Query().Get("callsign")
		reg := r.URL.Query().Get("reg")
		if callsign == "" && reg == "" {
			respondWithError(w, http.StatusBadRequest, "callsign or reg required")
			return
		}

		var (
			flight store.Row
			err    error
		)
		if callsign != "" {
			flight, err = st.LatestFlightByCallsign(r.Context(), callsign)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
		if flight == nil && reg != "" {
			flight, err = st.LatestFlightByRegistration(r.Context(), reg)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}

		if flight == nil {
			respondFlat(w, http.StatusOK, map[string]interface{}{
				"source":      nil,
				"origin":      nil,
				"destination": nil,
			})
			return
		}

		respondFlat(w, http.StatusOK, map[string]interface{}{
			"source":      "ubikais",
			"callsign":    flight["callsign"],
			"origin":      map[string]interface{}{"icao": flight["departure_icao"]},
			"destination": map[string]interface{}{"icao": flight["arrival_icao"]},
			"flight_plan": map[string]interface{}{
				"route":        flight["route"],
				"registration": flight["registration"],
			},
		})
	}
}
