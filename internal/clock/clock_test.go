package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReal(t *testing.T) {
	clk := NewReal()

	t.Run("AfterFunc fires", func(t *testing.T) {
		fired := make(chan struct{})
		clk.AfterFunc(time.Millisecond, func() { close(fired) })

		select {
		case <-fired:
		case <-time.After(5 * time.Second):
			t.Fatal("callback never fired")
		}
	})

	t.Run("Every stops from inside its own callback", func(t *testing.T) {
		var calls atomic.Int32
		stopped := make(chan struct{})

		handles := make(chan Handle, 1)
		handles <- clk.Every(time.Millisecond, func() {
			if calls.Add(1) == 3 {
				handle := <-handles
				handle.Stop()
				handle.Stop()
				close(stopped)
			}
		})

		select {
		case <-stopped:
		case <-time.After(5 * time.Second):
			t.Fatal("ticker never reached three calls")
		}

		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, int32(3), calls.Load())
	})
}
