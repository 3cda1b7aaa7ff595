package replay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-despair/internal/clock"
	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
)

var epoch = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func recordGame(rec *Recorder, plies int) {
	var board entity.Board
	rec.Record(board, entity.Empty, epoch)

	mover := entity.X
	for i := 0; i < plies; i++ {
		board[i] = mover
		rec.Record(board, mover, epoch.Add(time.Duration(i+1)*time.Second))
		mover = mover.Opponent()
	}
}

func TestRecorder_Record(t *testing.T) {
	t.Run("Keeps one entry per ply plus the initial state", func(t *testing.T) {
		// Given: a recorder
		rec := NewRecorder(clock.NewVirtual(epoch))

		// When: a five-ply game is recorded
		recordGame(rec, 5)

		// Then: six entries exist and the first is empty
		require.Equal(t, 6, rec.Len())
		first, ok := rec.First()
		require.True(t, ok)
		assert.Equal(t, entity.Board{}, first.Board)
		assert.Equal(t, entity.Empty, first.Mover)
	})

	t.Run("Entries are snapshots", func(t *testing.T) {
		// Given: a recorded board
		rec := NewRecorder(clock.NewVirtual(epoch))
		board := entity.Board{entity.X}
		rec.Record(board, entity.X, epoch)

		// When: the caller keeps mutating its board and the returned slice
		board[1] = entity.O
		entries := rec.Entries()
		entries[0].Board[2] = entity.O

		// Then: the stored entry is untouched
		stored := rec.Entries()[0].Board
		assert.Equal(t, entity.Board{entity.X}, stored)
	})
}

func TestRecorder_Steps(t *testing.T) {
	t.Run("Stepping stays inside bounds", func(t *testing.T) {
		// Given: three entries with the cursor at the start
		rec := NewRecorder(clock.NewVirtual(epoch))
		recordGame(rec, 2)

		// When: stepping back at the start
		moved := rec.StepBack()

		// Then: nothing happens
		assert.False(t, moved)
		assert.Equal(t, 0, rec.Cursor())

		// When: stepping forward past the end
		assert.True(t, rec.StepForward())
		assert.True(t, rec.StepForward())
		assert.False(t, rec.StepForward())

		// Then: the cursor rests on the last entry
		assert.Equal(t, 2, rec.Cursor())
		assert.True(t, rec.StepBack())
		assert.Equal(t, 1, rec.Cursor())
	})

	t.Run("OnStep sees every move", func(t *testing.T) {
		// Given: a recorder with an observer
		rec := NewRecorder(clock.NewVirtual(epoch))
		recordGame(rec, 3)
		var steps []int
		rec.OnStep(func(step int, _ Entry) { steps = append(steps, step) })

		// When: stepping around
		rec.StepForward()
		rec.StepForward()
		rec.StepBack()

		// Then: the observer saw each position
		assert.Equal(t, []int{1, 2, 1}, steps)
	})

	t.Run("An empty recorder ignores steps", func(t *testing.T) {
		rec := NewRecorder(clock.NewVirtual(epoch))

		assert.False(t, rec.StepForward())
		assert.False(t, rec.StepBack())
		_, ok := rec.Current()
		assert.False(t, ok)
	})
}

func TestRecorder_Play(t *testing.T) {
	t.Run("Plays to the end and stops", func(t *testing.T) {
		// Given: a four-entry replay
		clk := clock.NewVirtual(epoch)
		rec := NewRecorder(clk)
		recordGame(rec, 3)

		// When: playback runs at 400ms per step
		rec.Play(400 * time.Millisecond)
		clk.Advance(800 * time.Millisecond)

		// Then: two steps happened so far
		assert.Equal(t, 2, rec.Cursor())
		assert.True(t, rec.IsPlaying())

		// When: enough time passes to finish
		clk.Advance(10 * time.Second)

		// Then: it stopped on the last entry
		assert.Equal(t, 3, rec.Cursor())
		assert.False(t, rec.IsPlaying())
		assert.Equal(t, 0, clk.Pending())
	})

	t.Run("Restarts from the beginning after reaching the end", func(t *testing.T) {
		// Given: a replay already played through
		clk := clock.NewVirtual(epoch)
		rec := NewRecorder(clk)
		recordGame(rec, 2)
		rec.Play(100 * time.Millisecond)
		clk.Advance(time.Second)
		require.Equal(t, 2, rec.Cursor())

		// When: play is pressed again and one step passes
		rec.Play(100 * time.Millisecond)
		clk.Advance(100 * time.Millisecond)

		// Then: it restarted from the initial state
		assert.Equal(t, 1, rec.Cursor())
	})

	t.Run("Pause stops advancing", func(t *testing.T) {
		// Given: playback in progress
		clk := clock.NewVirtual(epoch)
		rec := NewRecorder(clk)
		recordGame(rec, 5)
		rec.Play(100 * time.Millisecond)
		clk.Advance(200 * time.Millisecond)

		// When: paused
		rec.Pause()
		clk.Advance(time.Second)

		// Then: the cursor stays where it was
		assert.Equal(t, 2, rec.Cursor())
		assert.False(t, rec.IsPlaying())
	})
}
