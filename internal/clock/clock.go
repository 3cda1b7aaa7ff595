// Package clock supplies the current time and cancellable delayed or periodic callbacks.
package clock

import (
	"sync"
	"time"
)

// Handle cancels a scheduled callback. Stop is safe to call more than once.
type Handle interface {
	Stop()
}

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Handle
	Every(d time.Duration, fn func()) Handle
}

// Real schedules callbacks with package time. Callbacks run on their own goroutines.
type Real struct{}

func NewReal() *Real {
	return &Real{}
}

func (Real) Now() time.Time {
	return time.Now()
}

func (Real) AfterFunc(d time.Duration, fn func()) Handle {
	return &timerHandle{timer: time.AfterFunc(d, fn)}
}

func (Real) Every(d time.Duration, fn func()) Handle {
	h := &tickerHandle{done: make(chan struct{})}
	ticker := time.NewTicker(d)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-h.done:
				return
			case <-ticker.C:
				select {
				case <-h.done:
					return
				default:
				}

				fn()
			}
		}
	}()

	return h
}

type timerHandle struct {
	timer *time.Timer
}

func (that *timerHandle) Stop() {
	that.timer.Stop()
}

type tickerHandle struct {
	once sync.Once
	done chan struct{}
}

// Stop does not wait for an in-flight callback, so it may be called from inside one.
func (that *tickerHandle) Stop() {
	that.once.Do(func() {
		close(that.done)
	})
}
