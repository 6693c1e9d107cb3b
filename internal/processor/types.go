package processor

import (
	"github.com/mauv0809/x1-ranking/internal/metrics"
	"github.com/mauv0809/x1-ranking/internal/pubsub"
)

// Processor reacts to match-recorded events.
type Processor struct {
	store     Store
	standings Standings
	pubsub    pubsub.PubSubClient
	notifier  Notifier
	metrics   metrics.Metrics
}
