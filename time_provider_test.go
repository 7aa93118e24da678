package percept

import (
	"testing"
	"time"
)

func TestDefaultTimeProvider_Now(t *testing.T) {
	tp := NewDefaultTimeProvider()

	before := time.Now()
	result := tp.Now()
	after := time.Now()

	if result.Before(before) || result.After(after) {
		t.Errorf("Now() returned time outside expected range")
	}
}

func TestDefaultTimeProvider_Today(t *testing.T) {
	tp := NewDefaultTimeProvider()
	result := tp.Today()

	expected := time.Now().Format("2006-01-02")
	if result != expected {
		t.Errorf("Today() = %q, want %q", result, expected)
	}
}

func TestDefaultTimeProvider_Unix(t *testing.T) {
	tp := NewDefaultTimeProvider()

	before := float64(time.Now().UnixNano()) / float64(time.Second)
	result := tp.Unix()
	after := float64(time.Now().UnixNano()) / float64(time.Second)

	if result < before || result > after {
		t.Errorf("Unix() = %v, expected between %v and %v", result, before, after)
	}
}

func TestMockTimeProvider(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	tp := NewMockTimeProvider(fixedTime)

	if !tp.Now().Equal(fixedTime) {
		t.Errorf("Now() = %v, want %v", tp.Now(), fixedTime)
	}

	if tp.Today() != "2025-06-15" {
		t.Errorf("Today() = %q, want %q", tp.Today(), "2025-06-15")
	}

	if got, want := tp.Unix(), float64(fixedTime.Unix()); got != want {
		t.Errorf("Unix() = %v, want %v", got, want)
	}

	if got, want := tp.Format("15:04"), "14:30"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	// Update time
	newTime := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)
	tp.SetTime(newTime)

	if tp.Today() != "2025-12-25" {
		t.Errorf("Today() after SetTime = %q, want %q", tp.Today(), "2025-12-25")
	}

	tp.Advance(30 * time.Minute)
	if got, want := tp.Format("15:04"), "10:30"; got != want {
		t.Errorf("Format() after Advance = %q, want %q", got, want)
	}
}
