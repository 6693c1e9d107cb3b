package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/mauv0809/x1-ranking/internal/metrics"
	"github.com/mauv0809/x1-ranking/internal/pubsub"
)

// ErrInvalidEvent marks payloads that can never be processed. They are
// acknowledged instead of redelivered.
var ErrInvalidEvent = errors.New("invalid match recorded event")

// New creates a new Processor.
func New(store Store, standings Standings, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		store:     store,
		standings: standings,
		pubsub:    pubsub,
		notifier:  notifier,
		metrics:   metrics,
	}
}

// HandleMatchRecorded decodes a match-recorded payload and announces the
// result followed by the updated ranking. Events for matches that no longer
// exist or are no longer approved are acknowledged and skipped.
func (p *Processor) HandleMatchRecorded(ctx context.Context, data []byte, dryRun bool) error {
	var event league.MatchRecord
	if err := p.pubsub.ProcessMessage(data, &event); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	log.Info("Processing match recorded event", "matchID", event.ID, "dryRun", dryRun)

	match, err := p.store.GetMatch(ctx, event.ID)
	if errors.Is(err, league.ErrMatchNotFound) {
		log.Warn("Skipping event for unknown match", "matchID", event.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load match %d: %w", event.ID, err)
	}

	if err := p.notifier.SendMatchResult(match, dryRun); err != nil {
		return fmt.Errorf("failed to send match result: %w", err)
	}

	standings, err := p.standings.Standings(ctx)
	if err != nil {
		// the result is already out, a missing table is not worth a redelivery
		log.Error("Failed to compute standings after match", "error", err, "matchID", match.ID)
		return nil
	}
	if err := p.notifier.SendStandings(standings, dryRun); err != nil {
		log.Error("Failed to send standings", "error", err, "matchID", match.ID)
	}
	return nil
}
