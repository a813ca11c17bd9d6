// Package countdown implements the single one-second countdown that drives
// forced completion of a timed test.
//
// A Countdown never runs on its own goroutine. The owner schedules one tick
// per second (in the TUI, a tea.Tick carrying the Token returned by Arm) and
// feeds it back through Tick. Every Arm or Cancel starts a new generation,
// so ticks issued for an earlier arming are ignored and two armed timers can
// never coexist.
package countdown

import (
	"fmt"
	"time"
)

// Resolution is the tick period.
const Resolution = time.Second

// Token identifies one arming of a Countdown.
type Token uint64

// Countdown counts whole seconds down to zero and reports expiry once.
type Countdown struct {
	onExpire  func()
	remaining int
	armed     bool
	gen       Token
}

// New creates a disarmed Countdown. onExpire is called exactly once per
// arming when the remaining time reaches zero. It may be nil.
func New(onExpire func()) *Countdown {
	return &Countdown{onExpire: onExpire}
}

// Arm (re)starts the countdown at d, rounded down to whole seconds, and
// returns the token ticks must carry. Any earlier token becomes stale.
func (c *Countdown) Arm(d time.Duration) Token {
	c.gen++
	c.remaining = int(d / Resolution)
	c.armed = true
	if c.remaining <= 0 {
		c.remaining = 0
		c.expire()
	}
	return c.gen
}

// Cancel suspends the countdown. Outstanding ticks become stale.
func (c *Countdown) Cancel() {
	if !c.armed {
		return
	}
	c.gen++
	c.armed = false
}

// Tick consumes one elapsed second for the arming identified by tok.
// It returns true while the countdown is still armed, i.e. when the
// owner should schedule the next tick.
func (c *Countdown) Tick(tok Token) bool {
	if !c.armed || tok != c.gen {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.expire()
		return false
	}
	return true
}

func (c *Countdown) expire() {
	c.armed = false
	c.gen++
	if c.onExpire != nil {
		c.onExpire()
	}
}

// Armed reports whether the countdown is running.
func (c *Countdown) Armed() bool {
	return c.armed
}

// Token returns the token of the current arming.
func (c *Countdown) Token() Token {
	return c.gen
}

// Remaining returns the time left, in whole seconds.
func (c *Countdown) Remaining() time.Duration {
	return time.Duration(c.remaining) * Resolution
}

// RemainingSeconds returns the time left as an integer second count.
func (c *Countdown) RemainingSeconds() int {
	return c.remaining
}

// Format renders seconds as m:ss.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
