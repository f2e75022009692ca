package flow

import (
	"sync"
	"time"
)

// ResendDelay is how long the UI holds the resend action after a code is
// dispatched.
const ResendDelay = 60 * time.Second

// Countdown ticks a resend hold-off from a starting number of seconds down
// to zero. The remaining count is pushed on C once per second; the channel
// closes after the zero tick or when Stop is called.
type Countdown struct {
	C <-chan int

	stopOnce sync.Once
	stop     chan struct{}
}

// NewCountdown starts a countdown from the given duration, rounded down to
// whole seconds. A non-positive duration yields an immediately closed
// channel with no ticks.
func NewCountdown(d time.Duration) *Countdown {
	out := make(chan int)
	c := &Countdown{
		C:    out,
		stop: make(chan struct{}),
	}

	go func() {
		defer close(out)

		remaining := int(d / time.Second)
		if remaining <= 0 {
			return
		}

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for remaining > 0 {
			select {
			case <-ticker.C:
				remaining--
				select {
				case out <- remaining:
				case <-c.stop:
					return
				}
			case <-c.stop:
				return
			}
		}
	}()

	return c
}

// Stop halts the countdown early and closes C. Safe to call more than once
// and after the countdown has already finished.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}
