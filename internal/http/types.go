package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/processor"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

type Server struct {
	Store          tournament.TournamentStore
	Processor      *processor.Processor
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         chi.Router
}

type registerPlayerRequest struct {
	Name string `json:"name"`
}

type reportMatchRequest struct {
	Winner *int64 `json:"winner"`
	Loser  *int64 `json:"loser"`
}

type playersResponse struct {
	Count   int                 `json:"count"`
	Players []tournament.Player `json:"players"`
}

type countResponse struct {
	Count int `json:"count"`
}
