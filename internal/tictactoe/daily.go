package tictactoe

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
)

const (
	e = entity.Empty
	x = entity.X
	o = entity.O
)

// dailyBoards are the pre-seeded daily puzzles.
var dailyBoards = [...]entity.Board{
	{e, e, e, e, x, e, e, e, o},
	{o, e, e, e, x, e, e, e, e},
	{e, e, o, e, x, e, e, e, e},
	{x, e, o, e, e, e, o, e, e},
	{e, o, e, x, e, e, e, o, e},
	{o, e, e, e, e, e, e, e, x},
}

// DailyBoard returns the puzzle at index, clamped into the catalog.
func DailyBoard(index int) (entity.Board, int) {
	index = clampDailyIndex(index)

	return dailyBoards[index], index
}

func DailyBoardCount() int {
	return len(dailyBoards)
}

func clampDailyIndex(index int) int {
	return min(max(index, 0), len(dailyBoards)-1)
}

// dailyDate is the calendar day a daily challenge belongs to.
func dailyDate(at time.Time) string {
	return at.UTC().Format(time.DateOnly)
}

// pickDaily returns today's puzzle index, drawing a new one on the first start of a day.
func (that *GameController) pickDailyLocked(now time.Time) (int, bool) {
	stats := &that.profile.Stats
	today := dailyDate(now)

	if stats.LastDailyChallengeDate != today {
		stats.LastDailyChallengeDate = today
		stats.DailyChallengeIndex = that.rng.Intn(len(dailyBoards))

		return stats.DailyChallengeIndex, true
	}

	stats.DailyChallengeIndex = clampDailyIndex(stats.DailyChallengeIndex)

	return stats.DailyChallengeIndex, false
}
