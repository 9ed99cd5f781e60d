package animation

import (
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestTickerStartStop(t *testing.T) {
	s := NewScheduler(clockz.NewFakeClock())
	calls := 0
	ticker := s.NewTicker(func(time.Duration) { calls++ })

	s.Step()
	if calls != 0 {
		t.Fatal("inactive ticker was called")
	}

	ticker.Start()
	ticker.Start()
	if !s.HasActiveTickers() || !ticker.IsActive() {
		t.Fatal("ticker should be active")
	}
	s.Step()
	s.Step()
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}

	ticker.Stop()
	s.Step()
	if calls != 2 {
		t.Errorf("stopped ticker was called, calls = %d", calls)
	}
	if s.HasActiveTickers() {
		t.Error("no tickers should remain active")
	}
}

func TestTickerElapsed(t *testing.T) {
	clock := clockz.NewFakeClock()
	s := NewScheduler(clock)

	var got time.Duration
	ticker := s.NewTicker(func(elapsed time.Duration) { got = elapsed })
	if ticker.Elapsed() != 0 {
		t.Error("inactive ticker should report zero elapsed")
	}
	ticker.Start()
	clock.Advance(48 * time.Millisecond)
	s.Step()

	if got != 48*time.Millisecond {
		t.Errorf("callback elapsed = %v, want 48ms", got)
	}
	if ticker.Elapsed() != 48*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 48ms", ticker.Elapsed())
	}
}

func TestTickerStopFromCallback(t *testing.T) {
	s := NewScheduler(clockz.NewFakeClock())
	calls := 0
	var ticker *Ticker
	ticker = s.NewTicker(func(time.Duration) {
		calls++
		ticker.Stop()
	})
	ticker.Start()
	s.Step()
	s.Step()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
