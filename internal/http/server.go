package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/processor"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

func NewServer(store tournament.TournamentStore, processor *processor.Processor, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Processor:      processor,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         chi.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.Router.Use(middleware.RequestID, middleware.Recoverer)
	s.Router.Handle("/metrics", s.MetricsHandler)

	s.Router.Group(func(r chi.Router) {
		r.Use(paramsMiddleware)

		r.Get("/health", s.HealthCheckHandler())

		r.Route("/players", func(r chi.Router) {
			r.Get("/", s.ListPlayersHandler())
			r.Post("/", s.RegisterPlayerHandler())
			r.Delete("/", s.DeletePlayersHandler())
			r.Get("/count", s.CountPlayersHandler())
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", s.ListMatchesHandler())
			r.Post("/", s.ReportMatchHandler())
			r.Delete("/", s.DeleteMatchesHandler())
		})

		r.Get("/standings", s.StandingsHandler())
		r.Post("/standings/announce", s.AnnounceStandingsHandler())
		r.Get("/pairings", s.PairingsHandler())
		r.Post("/rounds/announce", s.AnnounceRoundHandler())
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
