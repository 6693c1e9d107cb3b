package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	MatchesRecorded     prometheus.Counter
	SubmissionsRejected *prometheus.CounterVec
	StandingsComputed   prometheus.Counter
	StandingsDuration   prometheus.Histogram
	EventsPublished     prometheus.Counter
	EventsPublishFailed prometheus.Counter
	SlackNotifSent      prometheus.Counter
	SlackNotifFailed    prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
