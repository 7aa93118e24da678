package percept

import "time"

// TimeProvider supplies the clock used to stamp observations and to
// answer time queries (e.g. the assistant's current-time tool).
// Injecting it keeps every time-dependent path deterministic in tests.
type TimeProvider interface {
	// Now returns the current time.
	Now() time.Time

	// Unix returns the current time as fractional seconds since the
	// Unix epoch. This is the conventional Observation.Timestamp
	// source for drivers.
	Unix() float64

	// Today returns today's date as YYYY-MM-DD.
	Today() string

	// Format returns the current time formatted with the given Go
	// time layout.
	Format(layout string) string
}

// DefaultTimeProvider is the standard TimeProvider using the system
// clock.
type DefaultTimeProvider struct{}

// NewDefaultTimeProvider creates a new DefaultTimeProvider.
func NewDefaultTimeProvider() *DefaultTimeProvider {
	return &DefaultTimeProvider{}
}

// Now returns the current system time.
func (p *DefaultTimeProvider) Now() time.Time {
	return time.Now()
}

// Unix returns the current time as fractional seconds since the epoch.
func (p *DefaultTimeProvider) Unix() float64 {
	return unixSeconds(p.Now())
}

// Today returns today's date as YYYY-MM-DD.
func (p *DefaultTimeProvider) Today() string {
	return p.Now().Format("2006-01-02")
}

// Format returns the current time formatted with the given layout.
func (p *DefaultTimeProvider) Format(layout string) string {
	return p.Now().Format(layout)
}

// MockTimeProvider is a TimeProvider that returns a fixed time.
// Useful for testing time-dependent functionality.
type MockTimeProvider struct {
	fixedTime time.Time
}

// NewMockTimeProvider creates a MockTimeProvider with the given fixed
// time.
func NewMockTimeProvider(t time.Time) *MockTimeProvider {
	return &MockTimeProvider{fixedTime: t}
}

// SetTime updates the fixed time returned by Now().
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.fixedTime = t
}

// Advance moves the fixed time forward by d. Convenient for drivers
// that want distinct observation timestamps inside a test.
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.fixedTime = m.fixedTime.Add(d)
}

// Now returns the fixed time.
func (m *MockTimeProvider) Now() time.Time {
	return m.fixedTime
}

// Unix returns the fixed time as fractional seconds since the epoch.
func (m *MockTimeProvider) Unix() float64 {
	return unixSeconds(m.fixedTime)
}

// Today returns the fixed date as YYYY-MM-DD.
func (m *MockTimeProvider) Today() string {
	return m.fixedTime.Format("2006-01-02")
}

// Format returns the fixed time formatted with the given layout.
func (m *MockTimeProvider) Format(layout string) string {
	return m.fixedTime.Format(layout)
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// Compile-time checks that both providers implement TimeProvider.
var (
	_ TimeProvider = (*DefaultTimeProvider)(nil)
	_ TimeProvider = (*MockTimeProvider)(nil)
)
