package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	matchesRecorded     int
	submissionsRejected map[string]int
	standingsComputed   int
	standingsDurations  []float64
	eventsPublished     int
	eventsPublishFailed int
	slackNotifSent      int
	slackNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		submissionsRejected: make(map[string]int),
		standingsDurations:  make([]float64, 0),
	}
}

func (m *Mock) IncMatchesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRecorded++
}

func (m *Mock) IncSubmissionsRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionsRejected[reason]++
}

func (m *Mock) IncStandingsComputed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.standingsComputed++
}

func (m *Mock) ObserveStandingsDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.standingsDurations = append(m.standingsDurations, seconds)
}

func (m *Mock) IncEventsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsPublished++
}

func (m *Mock) IncEventsPublishFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsPublishFailed++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Getters for asserting in tests

func (m *Mock) MatchesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRecorded
}

func (m *Mock) SubmissionsRejected(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissionsRejected[reason]
}

func (m *Mock) StandingsComputed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.standingsComputed
}

func (m *Mock) StandingsDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.standingsDurations...)
}

func (m *Mock) EventsPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsPublished
}

func (m *Mock) EventsPublishFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsPublishFailed
}

func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
