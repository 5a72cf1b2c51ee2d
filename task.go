package slidez

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// task is a cancellable scheduled callback. Cancel is idempotent and is a
// no-op once a one-shot task has fired.
type task struct {
	timer  clockz.Timer
	ticker clockz.Ticker
	done   chan struct{}
	once   sync.Once
}

// after runs fn once, d from now on clock. The timer is armed before after
// returns so fake clocks can be advanced immediately.
func after(clock clockz.Clock, d time.Duration, fn func()) *task {
	t := &task{timer: clock.NewTimer(d), done: make(chan struct{})}
	go func() {
		select {
		case <-t.done:
		case <-t.timer.C():
			fn()
		}
	}()
	return t
}

// every runs fn each period until cancelled. Ticks are driven by a ticker
// whose channel holds at most one pending tick, so a slow fn never delays the
// schedule and no backlog accumulates.
func every(clock clockz.Clock, period time.Duration, fn func()) *task {
	t := &task{ticker: clock.NewTicker(period), done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-t.done:
				return
			case <-t.ticker.C():
				fn()
			}
		}
	}()
	return t
}

// Cancel stops the task.
func (t *task) Cancel() {
	if t == nil {
		return
	}
	t.once.Do(func() {
		close(t.done)
		if t.timer != nil {
			t.timer.Stop()
		}
		if t.ticker != nil {
			t.ticker.Stop()
		}
	})
}
