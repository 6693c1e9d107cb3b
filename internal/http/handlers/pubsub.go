package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/x1-ranking/internal/processor"
	"github.com/mauv0809/x1-ranking/internal/pubsub"
)

// MatchRecordedHandler receives match-recorded events from a Pub/Sub push
// subscription. A non-2xx answer makes Pub/Sub redeliver the message.
func MatchRecordedHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, envelope, err := pubsub.ReadPush(r.Body)
		if err != nil {
			log.Error("Failed to read push message", "error", err)
			http.Error(w, "Invalid push message", http.StatusBadRequest)
			return
		}
		log.FromContext(r.Context()).Debug("Received match recorded message", "subscription", envelope.Subscription, "messageID", envelope.Message.ID)

		err = proc.HandleMatchRecorded(r.Context(), rawData, IsDryRunFromContext(r))
		if errors.Is(err, processor.ErrInvalidEvent) {
			log.Warn("Dropping undecodable match recorded event", "error", err, "messageID", envelope.Message.ID)
			w.Write([]byte("IGNORED"))
			return
		}
		if err != nil {
			log.Error("Failed to handle match recorded event", "error", err)
			http.Error(w, "Failed to process message", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
