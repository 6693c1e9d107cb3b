package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMatchesRecorded()
	IncSubmissionsRejected(reason string)
	IncStandingsComputed()
	ObserveStandingsDuration(seconds float64)
	IncEventsPublished()
	IncEventsPublishFailed()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
