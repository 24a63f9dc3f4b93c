package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/pairing"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.ListPlayers(r.Context())
		if err != nil {
			log.Error("Failed to list players", "error", err)
			http.Error(w, "Failed to list players", http.StatusInternalServerError)
			return
		}
		if players == nil {
			players = []tournament.Player{}
		}
		writeJSON(w, http.StatusOK, playersResponse{Count: len(players), Players: players})
	}
}

func (s *Server) CountPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := s.Store.CountPlayers(r.Context())
		if err != nil {
			log.Error("Failed to count players", "error", err)
			http.Error(w, "Failed to count players", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, countResponse{Count: count})
	}
}

func (s *Server) RegisterPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Invalid register player request", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		id, err := s.Processor.RegisterPlayer(r.Context(), req.Name, isDryRunFromContext(r))
		if err != nil {
			http.Error(w, "Failed to register player", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, tournament.Player{ID: id, Name: req.Name})
	}
}

func (s *Server) DeletePlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to delete all players")
		if err := s.Processor.ResetPlayers(r.Context(), isDryRunFromContext(r)); err != nil {
			http.Error(w, "Failed to delete players", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Players deleted!")
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Store.ListMatches(r.Context())
		if err != nil {
			log.Error("Failed to list matches", "error", err)
			http.Error(w, "Failed to list matches", http.StatusInternalServerError)
			return
		}
		if matches == nil {
			matches = []tournament.Match{}
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) ReportMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reportMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Invalid report match request", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Winner == nil || req.Loser == nil {
			http.Error(w, "Both winner and loser are required", http.StatusBadRequest)
			return
		}

		if err := s.Processor.ReportResult(r.Context(), *req.Winner, *req.Loser, isDryRunFromContext(r)); err != nil {
			http.Error(w, "Failed to report match", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, "Match recorded!")
	}
}

func (s *Server) DeleteMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to delete all matches")
		if err := s.Processor.ResetMatches(r.Context(), isDryRunFromContext(r)); err != nil {
			http.Error(w, "Failed to delete matches", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Matches deleted!")
	}
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := s.Processor.Standings(r.Context())
		if err != nil {
			http.Error(w, "Failed to load standings", http.StatusInternalServerError)
			return
		}
		if standings == nil {
			standings = []tournament.Standing{}
		}
		writeJSON(w, http.StatusOK, standings)
	}
}

func (s *Server) PairingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairings, err := s.Processor.Pairings(r.Context())
		if err != nil {
			writePairingError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pairings)
	}
}

func (s *Server) AnnounceRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairings, err := s.Processor.AnnounceRound(r.Context(), isDryRunFromContext(r))
		if err != nil {
			if pairings != nil {
				// Pairings were generated but the announcement failed.
				http.Error(w, "Failed to announce pairings", http.StatusBadGateway)
				return
			}
			writePairingError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pairings)
	}
}

func (s *Server) AnnounceStandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := s.Processor.AnnounceStandings(r.Context(), isDryRunFromContext(r))
		if err != nil {
			if standings != nil {
				http.Error(w, "Failed to announce standings", http.StatusBadGateway)
				return
			}
			http.Error(w, "Failed to load standings", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, standings)
	}
}

func writePairingError(w http.ResponseWriter, err error) {
	if errors.Is(err, pairing.ErrOddPlayerCount) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	http.Error(w, "Failed to generate pairings", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
