package clock

import "time"

// Delay is a one-shot driver: register it with its own Duration as the
// interval and the callback fires on the first tick after Start.
type Delay struct {
	duration time.Duration
	fn       func()
}

// NewDelay creates a stopped delay of the given duration.
func NewDelay(d time.Duration) *Delay {
	return &Delay{duration: d}
}

// Duration returns the delay length.
func (d *Delay) Duration() time.Duration {
	return d.duration
}

// Start arms the delay. A pending callback from an earlier Start is
// dropped; only the latest one fires.
func (d *Delay) Start(fn func()) {
	d.fn = fn
}

// Tick fires the pending callback once and disarms the delay.
func (d *Delay) Tick() {
	fn := d.fn
	if fn == nil {
		return
	}
	d.fn = nil
	fn()
}

// Stop disarms the delay without firing.
func (d *Delay) Stop() {
	d.fn = nil
}

// IsRunning reports whether a callback is pending.
func (d *Delay) IsRunning() bool {
	return d.fn != nil
}
