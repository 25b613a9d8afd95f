package gamemode

import "time"

type ClockState int

const (
	ClockRunning ClockState = iota
	ClockExpired
)

// Clock counts a round down from Duration. It is polled once per frame;
// there is no pause and no timer callback.
type Clock struct {
	State     ClockState
	Duration  time.Duration
	Start     time.Time
	Remaining time.Duration
}

func NewClock(duration time.Duration, now time.Time) *Clock {
	c := &Clock{Duration: duration}
	c.Restart(now)
	return c
}

func (c *Clock) Restart(now time.Time) {
	c.State = ClockRunning
	c.Start = now
	c.Remaining = c.Duration
}

// Tick recomputes Remaining from the time elapsed since Start. Remaining
// never grows and stops at zero.
func (c *Clock) Tick(now time.Time) {
	if c.State == ClockExpired {
		return
	}

	left := c.Duration - now.Sub(c.Start)
	if left < c.Remaining {
		c.Remaining = max(left, 0)
	}
	if c.Remaining == 0 {
		c.State = ClockExpired
	}
}

func (c *Clock) IsOver() bool {
	return c.State == ClockExpired
}

// Seconds is the whole seconds left, rounded up: a fresh round shows the
// full duration and only an expired one shows 0.
func (c *Clock) Seconds() int {
	return int((c.Remaining + time.Second - 1) / time.Second)
}
