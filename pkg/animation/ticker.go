// Package animation drives per-frame work for carousels.
//
// # Core Components
//
//   - [Scheduler]: owns the set of active tickers and advances them once per
//     frame via [Scheduler.Step].
//
//   - [Ticker]: calls a callback every frame while active. A carousel starts
//     its ticker when motion begins and stops it once the track settles.
//
//   - [FrameLoop]: calls a frame function at a fixed interval until its
//     context ends, typically `scheduler.Step` plus resize flushing.
//
// Time comes from a clockz.Clock so tests can drive frames with a fake clock.
package animation

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Scheduler tracks active tickers and steps them once per frame.
type Scheduler struct {
	clock clockz.Clock

	mu     sync.Mutex
	active map[*Ticker]struct{}
}

// NewScheduler creates a scheduler reading time from clock. A nil clock
// uses clockz.RealClock.
func NewScheduler(clock clockz.Clock) *Scheduler {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &Scheduler{
		clock:  clock,
		active: make(map[*Ticker]struct{}),
	}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// NewTicker creates an inactive ticker owned by s.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		scheduler: s,
		callback:  callback,
	}
}

// Step advances all active tickers. Call it once per frame.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers.
	tickers := make([]*Ticker, 0, len(s.active))
	for ticker := range s.active {
		tickers = append(tickers, ticker)
	}
	s.mu.Unlock()

	now := s.Now()
	for _, ticker := range tickers {
		if ticker.IsActive() && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.startTime()))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker. Starting an active ticker does nothing.
func (t *Ticker) Start() {
	s := t.scheduler
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = s.clock.Now()
	s.active[t] = struct{}{}
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	s := t.scheduler
	s.mu.Lock()
	defer s.mu.Unlock()
	if !t.isActive {
		return
	}
	t.isActive = false
	delete(s.active, t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.IsActive() {
		return 0
	}
	return t.scheduler.Now().Sub(t.startTime())
}

func (t *Ticker) startTime() time.Time {
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()
	return t.start
}
