package replay

import (
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-despair/internal/clock"
	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
)

// Entry is one snapshot of the board. Mover is Empty for the initial state.
type Entry struct {
	Board     entity.Board `json:"board"`
	Mover     entity.Mark  `json:"mover"`
	Timestamp time.Time    `json:"timestamp"`
}

// Recorder is an append-only log of board snapshots with a playback cursor.
type Recorder struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries []Entry
	cursor  int
	playing clock.Handle
	onStep  func(step int, entry Entry)
}

func NewRecorder(clk clock.Clock) *Recorder {
	return &Recorder{clock: clk}
}

// OnStep registers a callback invoked whenever the cursor moves.
func (that *Recorder) OnStep(fn func(step int, entry Entry)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.onStep = fn
}

func (that *Recorder) Record(board entity.Board, mover entity.Mark, at time.Time) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.entries = append(that.entries, Entry{Board: board, Mover: mover, Timestamp: at})
}

// Reset drops every entry and stops playback.
func (that *Recorder) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopLocked()
	that.entries = nil
	that.cursor = 0
}

func (that *Recorder) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.entries)
}

func (that *Recorder) Entries() []Entry {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]Entry(nil), that.entries...)
}

// First returns the initial snapshot.
func (that *Recorder) First() (Entry, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.entries) == 0 {
		return Entry{}, false
	}

	return that.entries[0], true
}

func (that *Recorder) Cursor() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.cursor
}

func (that *Recorder) Current() (Entry, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.entries) == 0 {
		return Entry{}, false
	}

	return that.entries[that.cursor], true
}

func (that *Recorder) IsPlaying() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.playing != nil
}

// Rewind puts the cursor back on the initial snapshot.
func (that *Recorder) Rewind() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopLocked()
	that.cursor = 0
}

func (that *Recorder) StepForward() bool {
	that.mu.Lock()

	if that.cursor >= len(that.entries)-1 {
		that.mu.Unlock()
		return false
	}

	that.cursor++
	step, entry, fn := that.cursor, that.entries[that.cursor], that.onStep
	that.mu.Unlock()

	if fn != nil {
		fn(step, entry)
	}

	return true
}

func (that *Recorder) StepBack() bool {
	that.mu.Lock()

	if that.cursor == 0 || len(that.entries) == 0 {
		that.mu.Unlock()
		return false
	}

	that.cursor--
	step, entry, fn := that.cursor, that.entries[that.cursor], that.onStep
	that.mu.Unlock()

	if fn != nil {
		fn(step, entry)
	}

	return true
}

// Play advances the cursor every interval until the last entry. Playback that
// already reached the end starts again from the initial snapshot.
func (that *Recorder) Play(interval time.Duration) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.playing != nil || len(that.entries) < 2 {
		return
	}

	if that.cursor >= len(that.entries)-1 {
		that.cursor = 0
	}

	var handle clock.Handle
	handle = that.clock.Every(interval, func() {
		if !that.StepForward() || that.atEnd() {
			that.stopHandle(handle)
		}
	})
	that.playing = handle
}

func (that *Recorder) Pause() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopLocked()
}

func (that *Recorder) atEnd() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.cursor >= len(that.entries)-1
}

func (that *Recorder) stopHandle(handle clock.Handle) {
	that.mu.Lock()
	defer that.mu.Unlock()

	handle.Stop()

	if that.playing == handle {
		that.playing = nil
	}
}

func (that *Recorder) stopLocked() {
	if that.playing != nil {
		that.playing.Stop()
		that.playing = nil
	}
}
