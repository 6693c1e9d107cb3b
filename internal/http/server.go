package http

import (
	"net/http"

	"github.com/mauv0809/x1-ranking/internal/champions"
	"github.com/mauv0809/x1-ranking/internal/config"
	"github.com/mauv0809/x1-ranking/internal/http/handlers"
	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/mauv0809/x1-ranking/internal/metrics"
	"github.com/mauv0809/x1-ranking/internal/notifier"
	"github.com/mauv0809/x1-ranking/internal/processor"
	"github.com/rs/cors"
)

func NewServer(store league.LeagueStore, svc league.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, championClient champions.ChampionClient, notifier notifier.Notifier, processor *processor.Processor) *Server {
	server := &Server{
		Store:          store,
		League:         svc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Champions:      championClient,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
	}

	server.routes()
	server.handler = Chain(server.Router, requestIDMiddleware, corsMiddleware(cfg.CORSAllowedOrigins))
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(handler, paramsMiddleware, authMiddleware)
	slackVerified := slackVerifierMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(s.Store), paramsMiddleware))

	s.Router.Handle("GET /api/players", Chain(handlers.ListPlayersHandler(s.League), paramsMiddleware))
	s.Router.Handle("GET /api/roster", Chain(handlers.ListRosterHandler(s.League), paramsMiddleware))
	s.Router.Handle("GET /api/matches", Chain(handlers.ListMatchesHandler(s.League), paramsMiddleware))
	s.Router.Handle("GET /api/matches/{id}", Chain(handlers.GetMatchHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /api/matches", Chain(handlers.SubmitMatchHandler(s.League), paramsMiddleware))
	s.Router.Handle("GET /api/champions", Chain(handlers.ListChampionsHandler(s.Champions), paramsMiddleware))

	s.Router.Handle("POST /slack/command/ranking", Chain(handlers.RankingCommandHandler(s.League, s.Notifier), paramsMiddleware, slackVerified))
	s.Router.Handle("POST /pubsub/match-recorded", Chain(handlers.MatchRecordedHandler(s.Processor), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func corsMiddleware(origins []string) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return c.Handler
}
