// Package clock drives fixed-interval animation drivers from a single
// external loop. Front-ends call Advance once per frame with the elapsed
// time; every registered driver ticks once per full interval it owes.
// Everything runs on the caller's goroutine; there is no locking.
package clock

import "time"

// Driver is a piece of animation state advanced at a fixed interval.
type Driver interface {
	Tick()
	Stop()
	IsRunning() bool
}

type entry struct {
	interval time.Duration
	driver   Driver
	acc      time.Duration
}

// Scheduler owns the per-driver time accumulators.
type Scheduler struct {
	entries []*entry
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers d to be ticked each interval while it reports running.
// Drivers are advanced in registration order.
func (s *Scheduler) Every(interval time.Duration, d Driver) {
	if interval <= 0 {
		panic("clock: non-positive interval")
	}
	s.entries = append(s.entries, &entry{interval: interval, driver: d})
}

// Advance moves time forward by elapsed. A driver that is not running
// loses any partial interval, so when it is started again its first tick
// comes one full interval later. A driver that stops itself mid-catch-up
// receives no further ticks.
func (s *Scheduler) Advance(elapsed time.Duration) {
	for _, e := range s.entries {
		if !e.driver.IsRunning() {
			e.acc = 0
			continue
		}
		e.acc += elapsed
		for e.acc >= e.interval && e.driver.IsRunning() {
			e.acc -= e.interval
			e.driver.Tick()
		}
		if !e.driver.IsRunning() {
			e.acc = 0
		}
	}
}

// Reset discards d's partial interval. Call it after restarting a driver
// that was still running.
func (s *Scheduler) Reset(d Driver) {
	for _, e := range s.entries {
		if e.driver == d {
			e.acc = 0
		}
	}
}

// StopAll stops every registered driver.
func (s *Scheduler) StopAll() {
	for _, e := range s.entries {
		e.driver.Stop()
		e.acc = 0
	}
}

// Running returns how many registered drivers are currently running.
func (s *Scheduler) Running() int {
	n := 0
	for _, e := range s.entries {
		if e.driver.IsRunning() {
			n++
		}
	}
	return n
}
