package clock

import (
	"sort"
	"sync"
	"time"
)

// Virtual is a manually advanced clock. Due callbacks run synchronously inside Advance,
// in deadline order, on the caller's goroutine.
type Virtual struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*virtualTimer
}

type virtualTimer struct {
	clock    *Virtual
	id       int
	deadline time.Time
	period   time.Duration
	fn       func()
	stopped  bool
}

func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

func (that *Virtual) Now() time.Time {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.now
}

func (that *Virtual) AfterFunc(d time.Duration, fn func()) Handle {
	return that.schedule(d, 0, fn)
}

func (that *Virtual) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		d = time.Millisecond
	}

	return that.schedule(d, d, fn)
}

func (that *Virtual) schedule(d, period time.Duration, fn func()) Handle {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.seq++
	t := &virtualTimer{
		clock:    that,
		id:       that.seq,
		deadline: that.now.Add(d),
		period:   period,
		fn:       fn,
	}
	that.timers = append(that.timers, t)

	return t
}

// Advance moves time forward by d, firing every callback that falls due on the way.
func (that *Virtual) Advance(d time.Duration) {
	that.mu.Lock()
	target := that.now.Add(d)
	that.mu.Unlock()

	for {
		t := that.nextDue(target)
		if t == nil {
			break
		}

		t.fn()
	}

	that.mu.Lock()
	that.now = target
	that.mu.Unlock()
}

// Set jumps to an absolute time, firing what falls due in between.
func (that *Virtual) Set(at time.Time) {
	that.Advance(at.Sub(that.Now()))
}

// Pending reports how many callbacks are still scheduled.
func (that *Virtual) Pending() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.compact()

	return len(that.timers)
}

// nextDue pops the earliest callback due at or before target and moves now to its deadline.
func (that *Virtual) nextDue(target time.Time) *virtualTimer {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.compact()

	if len(that.timers) == 0 {
		return nil
	}

	sort.SliceStable(that.timers, func(i, j int) bool {
		if that.timers[i].deadline.Equal(that.timers[j].deadline) {
			return that.timers[i].id < that.timers[j].id
		}
		return that.timers[i].deadline.Before(that.timers[j].deadline)
	})

	t := that.timers[0]
	if t.deadline.After(target) {
		return nil
	}

	that.now = t.deadline

	if t.period > 0 {
		t.deadline = t.deadline.Add(t.period)
	} else {
		t.stopped = true
	}

	return t
}

func (that *Virtual) compact() {
	live := that.timers[:0]
	for _, t := range that.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}

	for i := len(live); i < len(that.timers); i++ {
		that.timers[i] = nil
	}

	that.timers = live
}

func (that *virtualTimer) Stop() {
	that.clock.mu.Lock()
	defer that.clock.mu.Unlock()

	that.stopped = true
}
