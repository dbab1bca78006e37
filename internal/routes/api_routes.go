package routes

import (
	"github.com/go-chi/chi/v5"

	"ubikais/mirror/internal/api"
	"ubikais/mirror/internal/common"
	"ubikais/mirror/internal/crawler"
	"ubikais/mirror/internal/store"
)

// RegisterAPIRoutes mounts the /api surface.
func RegisterAPIRoutes(r chi.Router, st *store.Store, cr *crawler.Crawler, cacheSvc *common.CacheService) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/", api.IndexHandler())
		r.Get("/status", api.StatusHandler(st, cr, cacheSvc))

		r.Route("/flights", func(r chi.Router) {
			r.Get("/", api.FlightsHandler(st))
			r.Get("/departures", api.DeparturesHandler(st))
			r.Get("/arrivals", api.ArrivalsHandler(st))
			r.Get("/search", api.FlightSearchHandler(st))
			r.Get("/route", api.FlightRouteHandler(st))
		})

		r.Route("/weather", func(r chi.Router) {
			r.Get("/", api.WeatherHandler(st))
			r.Get("/metar/{airport}", api.MetarHandler(st))
			r.Get("/taf/{airport}", api.TafHandler(st))
		})

		r.Route("/notam", func(r chi.Router) {
			r.Get("/", api.NotamHandler(st))
			r.Get("/{location}", api.NotamByLocationHandler(st))
		})

		r.Route("/airports", func(r chi.Router) {
			r.Get("/", api.AirportsHandler(st, cacheSvc))
			r.Get("/{icao}", api.AirportInfoHandler(st))
		})
	})
}
