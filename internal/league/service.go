package league

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/x1-ranking/internal/metrics"
	"github.com/mauv0809/x1-ranking/internal/pubsub"
	"github.com/mauv0809/x1-ranking/internal/ranking"
)

type service struct {
	store     LeagueStore
	metrics   metrics.Metrics
	publisher pubsub.PubSubClient
	topic     string
	champions ChampionChecker
}

// Option configures optional collaborators of the service.
type Option func(*service)

// WithPublisher publishes a match-recorded event to topic after each insert.
func WithPublisher(publisher pubsub.PubSubClient, topic string) Option {
	return func(s *service) {
		s.publisher = publisher
		s.topic = topic
	}
}

// WithChampionValidation rejects champions unknown to checker.
func WithChampionValidation(checker ChampionChecker) Option {
	return func(s *service) {
		s.champions = checker
	}
}

// NewService creates the league service on top of a store.
func NewService(store LeagueStore, metrics metrics.Metrics, opts ...Option) Service {
	s := &service{
		store:   store,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Standings aggregates the ledger and returns players in rank order.
func (s *service) Standings(ctx context.Context) ([]ranking.Standing, error) {
	start := time.Now()
	players, err := s.store.GetRankedPlayers(ctx)
	if err != nil {
		return nil, err
	}
	standings := ranking.Rank(players)

	s.metrics.IncStandingsComputed()
	s.metrics.ObserveStandingsDuration(time.Since(start).Seconds())
	log.Debug("Computed standings", "players", len(standings), "duration", time.Since(start))
	return standings, nil
}

func (s *service) MatchHistory(ctx context.Context) ([]MatchRecord, error) {
	return s.store.GetMatchHistory(ctx)
}

func (s *service) Players(ctx context.Context) ([]Player, error) {
	return s.store.GetAllPlayers(ctx)
}

// SubmitMatch validates a submission, records it and announces it.
func (s *service) SubmitMatch(ctx context.Context, submission Submission) (*MatchRecord, error) {
	match, err := submission.Validate()
	if err != nil {
		s.metrics.IncSubmissionsRejected("validation")
		return nil, err
	}

	if err := s.checkChampions(ctx, match); err != nil {
		return nil, err
	}

	players, err := s.store.GetPlayers(ctx, []int64{match.WinnerPlayerID, match.LoserPlayerID})
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	for _, id := range []int64{match.WinnerPlayerID, match.LoserPlayerID} {
		if _, ok := names[id]; !ok {
			s.metrics.IncSubmissionsRejected("unknown_player")
			return nil, fmt.Errorf("%w: id %d", ErrPlayerNotFound, id)
		}
	}

	id, err := s.store.InsertMatch(ctx, match)
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			s.metrics.IncSubmissionsRejected("unknown_player")
		}
		return nil, err
	}
	s.metrics.IncMatchesRecorded()

	record := &MatchRecord{
		ID:             id,
		WinnerPlayerID: match.WinnerPlayerID,
		WinnerName:     names[match.WinnerPlayerID],
		WinnerChampion: match.WinnerChampion,
		LoserPlayerID:  match.LoserPlayerID,
		LoserName:      names[match.LoserPlayerID],
		LoserChampion:  match.LoserChampion,
		MatchDate:      match.MatchDate.Format(DateLayout),
		Approved:       true,
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
	s.publish(ctx, record)
	return record, nil
}

func (s *service) checkChampions(ctx context.Context, match NewMatch) error {
	if s.champions == nil {
		return nil
	}
	fields := []string{"winnerChampion", "loserChampion"}
	names := []string{match.WinnerChampion, match.LoserChampion}
	known, err := s.champions.AreChampions(ctx, names...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if len(known) != len(names) {
		return fmt.Errorf("%w: got %d results for %d names", ErrCatalogUnavailable, len(known), len(names))
	}
	for i, ok := range known {
		if !ok {
			s.metrics.IncSubmissionsRejected("unknown_champion")
			return &ValidationError{Field: fields[i], Message: fmt.Sprintf("unknown champion %q", names[i])}
		}
	}
	return nil
}

// publish never fails the submission; the match is already stored.
func (s *service) publish(ctx context.Context, record *MatchRecord) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.SendMessage(ctx, s.topic, record); err != nil {
		s.metrics.IncEventsPublishFailed()
		log.Error("Failed to publish match recorded event", "error", err, "matchID", record.ID, "topic", s.topic)
		return
	}
	s.metrics.IncEventsPublished()
}
