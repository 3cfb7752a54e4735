// Package scheduler runs a task once after a fixed delay. Scheduling again
// before the delay elapses supersedes the pending task.
package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tartampluch/go-exact-age/internal/config"
)

// Ticket identifies one scheduled run. Only the latest ticket is current.
type Ticket uint64

// Delayed holds at most one pending task.
type Delayed struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	current Ticket
	closed  bool
}

// NewDelayed creates a scheduler that waits delay before each run.
// A non-positive delay runs tasks on the next timer tick.
func NewDelayed(delay time.Duration) *Delayed {
	if delay < 0 {
		delay = 0
	}
	return &Delayed{delay: delay}
}

// Schedule cancels any pending task and arranges for fn to run after the
// delay on its own goroutine. fn receives its ticket so it can check, before
// publishing anything, that no newer request started in the meantime.
// Schedule on a closed scheduler returns the zero ticket, which is never current.
func (d *Delayed) Schedule(fn func(Ticket)) Ticket {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0
	}

	d.current++
	ticket := d.current
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if ticket != d.current || d.closed {
			d.mu.Unlock()
			slog.Debug(config.MsgCalcStale,
				config.LogKeyComponent, config.CompScheduler,
				config.LogKeyTicket, uint64(ticket))
			return
		}
		d.timer = nil
		d.mu.Unlock()

		fn(ticket)
	})
	return ticket
}

// Current reports whether t is the latest scheduled ticket.
func (d *Delayed) Current(t Ticket) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.closed && t != 0 && t == d.current
}

// Pending reports whether a task is waiting for its delay to elapse.
func (d *Delayed) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Cancel drops the pending task, if any, and invalidates every issued ticket.
func (d *Delayed) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.current++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Close cancels the pending task and refuses further scheduling.
func (d *Delayed) Close() {
	d.Cancel()

	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
}
