package http

import (
	"net/http"

	"github.com/mauv0809/x1-ranking/internal/champions"
	"github.com/mauv0809/x1-ranking/internal/config"
	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/mauv0809/x1-ranking/internal/metrics"
	"github.com/mauv0809/x1-ranking/internal/notifier"
	"github.com/mauv0809/x1-ranking/internal/processor"
)

type Server struct {
	Store          league.LeagueStore
	League         league.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Champions      champions.ChampionClient
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux

	handler http.Handler
}
