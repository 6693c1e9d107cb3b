package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/mauv0809/x1-ranking/internal/notifier"
	"github.com/slack-go/slack"
)

const defaultHistoryLimit = 10

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// parseRankingText parses the text of the ranking command.
// Expected formats: "", "matches", "matches 5"
func parseRankingText(text string) (showMatches bool, limit int) {
	parts := strings.Fields(strings.ToLower(text))
	if len(parts) == 0 || (parts[0] != "matches" && parts[0] != "history") {
		return false, 0
	}
	limit = defaultHistoryLimit
	if len(parts) > 1 {
		if n, err := strconv.Atoi(parts[1]); err == nil && n > 0 {
			limit = n
		}
	}
	return true, limit
}

// RankingCommandHandler answers the /ranking slash command with the ranking
// table, or the recent matches when asked for them.
func RankingCommandHandler(svc league.Service, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		showMatches, limit := parseRankingText(r.FormValue("text"))
		log.FromContext(r.Context()).Info("Received ranking command", "user", r.FormValue("user_name"), "matches", showMatches)

		var (
			msg any
			err error
		)
		if showMatches {
			matches, herr := svc.MatchHistory(r.Context())
			if herr != nil {
				http.Error(w, "Failed to get matches", http.StatusInternalServerError)
				log.Error("Failed to get match history", "error", herr)
				return
			}
			msg, err = notifier.FormatMatchHistoryResponse(matches, limit)
		} else {
			standings, serr := svc.Standings(r.Context())
			if serr != nil {
				http.Error(w, "Failed to get ranking", http.StatusInternalServerError)
				log.Error("Failed to compute standings", "error", serr)
				return
			}
			msg, err = notifier.FormatStandingsResponse(standings)
		}
		if err != nil {
			http.Error(w, "Failed to format ranking", http.StatusInternalServerError)
			log.Error("Failed to format ranking", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}
