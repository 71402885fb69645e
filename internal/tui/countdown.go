package tui

import "errors"

// countdownState tracks the focus timer engine state.
type countdownState int

const (
	countdownIdle countdownState = iota
	countdownRunning
	countdownPaused
	countdownCompleted
)

var errZeroDuration = errors.New("duration must be greater than zero")

// countdown is the focus timer engine: a plain decrementing clock,
// advanced one second at a time by an external tick source. Nothing
// here is persisted; the engine lives and dies with its view.
type countdown struct {
	state     countdownState
	remaining int // seconds left on the clock
	total     int // duration when the countdown was (re)started

	// configured duration, applied on start/reset when no time is on
	// the clock
	minutes int
	seconds int
}

func newCountdown(minutes, seconds int) countdown {
	return countdown{
		minutes:   minutes,
		seconds:   seconds,
		remaining: minutes*60 + seconds,
		total:     minutes*60 + seconds,
	}
}

// configure stores a new duration. A running or paused countdown keeps
// its clock; the new values apply on the next reset or fresh start.
func (c *countdown) configure(minutes, seconds int) {
	c.minutes = minutes
	c.seconds = seconds
	if c.state == countdownIdle {
		c.remaining = minutes*60 + seconds
		c.total = c.remaining
	}
}

// start begins or resumes the countdown. With no time on the clock the
// configured duration is applied first; a zero duration is rejected
// without any state change.
func (c *countdown) start() error {
	if c.remaining == 0 {
		c.remaining = c.minutes*60 + c.seconds
		c.total = c.remaining
	}
	if c.remaining == 0 {
		return errZeroDuration
	}
	c.state = countdownRunning
	return nil
}

// pause stops the ticking without touching the clock.
func (c *countdown) pause() {
	if c.state == countdownRunning {
		c.state = countdownPaused
	}
}

// reset puts the configured duration back on the clock and returns to
// idle. The clock is never reset to zero.
func (c *countdown) reset() {
	c.remaining = c.minutes*60 + c.seconds
	c.total = c.remaining
	c.state = countdownIdle
}

// tick advances the countdown by one second and returns the value to
// display plus whether this tick completed the countdown. Over a full
// run the displayed values are total,…,1,0 — one per tick — and the
// tick that shows zero is the one that completes. Ticks are ignored
// unless the engine is running.
func (c *countdown) tick() (display int, completed bool) {
	if c.state != countdownRunning {
		return c.remaining, false
	}
	if c.remaining > 0 {
		display = c.remaining
		c.remaining--
		return display, false
	}
	c.state = countdownCompleted
	return 0, true
}

// progress is the elapsed fraction as an integer percentage.
func (c countdown) progress() int {
	if c.total == 0 {
		return 0
	}
	p := (c.total - c.remaining) * 100 / c.total
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p
}

func (c countdown) running() bool   { return c.state == countdownRunning }
func (c countdown) paused() bool    { return c.state == countdownPaused }
func (c countdown) completed() bool { return c.state == countdownCompleted }
