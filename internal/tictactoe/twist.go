package tictactoe

import "github.com/rocketscienceinc/tictactoe-despair/internal/entity"

// TwistMessage is the flavour line shown under the board.
func TwistMessage(mode entity.Mode, stats entity.Stats) string {
	switch mode {
	case entity.ModeSuddenDeath:
		return "Sudden Death! Every move counts, and time is your enemy."
	case entity.ModeBlindPlay:
		return "Blind Play! Can you remember what was hidden?"
	case entity.ModeDailyChallenge:
		return "Daily Challenge! Can you solve today's puzzle?"
	}

	switch {
	case stats.ConsecutivePlayerLosses >= 2:
		return "The AI senses your repeated losses. It's getting relentless."
	case stats.ConsecutivePlayerWins >= 1:
		return "You're on a winning streak! The AI is calculating your demise."
	case stats.AIWins > stats.PlayerWins+2:
		return "The AI is dominating. Can you even make it draw?"
	case stats.PlayerWins > stats.AIWins+2:
		return "You're outsmarting the AI! Don't let your guard down."
	default:
		return "The AI adapts, evolves, and *remembers*. Play wisely, or face its true despair!"
	}
}
