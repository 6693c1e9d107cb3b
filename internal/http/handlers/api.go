package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/x1-ranking/internal/champions"
	"github.com/mauv0809/x1-ranking/internal/league"
)

const maxBodyBytes = 1 << 20

// ListPlayersHandler returns every player with aggregated results, in rank order.
func ListPlayersHandler(svc league.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := svc.Standings(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, standings)
	}
}

// ListRosterHandler returns the bare player list, sorted by name, for form pickers.
func ListRosterHandler(svc league.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := svc.Players(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func ListMatchesHandler(svc league.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := svc.MatchHistory(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

// GetMatchHandler returns a single approved match by id.
func GetMatchHandler(store league.LeagueStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil || id <= 0 {
			writeError(w, &league.ValidationError{Field: "id", Message: "must be a positive integer"})
			return
		}
		match, err := store.GetMatch(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

type submitMatchResponse struct {
	ID int64 `json:"id"`
}

func SubmitMatchHandler(svc league.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var submission league.Submission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			log.Warn("Rejected malformed match submission", "error", err)
			writeError(w, &league.ValidationError{Message: "invalid request body"})
			return
		}

		match, err := svc.SubmitMatch(r.Context(), submission)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, submitMatchResponse{ID: match.ID})
	}
}

func ListChampionsHandler(client champions.ChampionClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		champs, err := client.GetChampions(r.Context())
		if err != nil {
			log.Error("Failed to fetch champion catalog", "error", err)
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "champion catalog unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, champs)
	}
}
