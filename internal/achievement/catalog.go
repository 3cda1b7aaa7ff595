package achievement

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
)

const (
	FirstWin                = "firstWin"
	MasterOfDespairBronze   = "masterOfDespairBronze"
	MasterOfDespairSilver   = "masterOfDespairSilver"
	MasterOfDespairGold     = "masterOfDespairGold"
	MasterOfDespairPlatinum = "masterOfDespairPlatinum"
	UnstoppableForce        = "unstoppableForce"
	PerfectGame             = "perfectGame"
	BreakingFlow            = "breakingFlow"
	DrawSpecialist          = "drawSpecialist"
	NeverGiveUp             = "neverGiveUp"
	SuddenDeathSurvivor     = "suddenDeathSurvivor"
	SuddenDeathChampion     = "suddenDeathChampion"
	BlindPlayInitiate       = "blindPlayInitiate"
	DailyChallengeConqueror = "dailyChallengeConqueror"
	TacticalGenius          = "tacticalGenius"
	LuckyStrike             = "luckyStrike"
	ThemesUnlocked          = "themesUnlocked"
)

const (
	unstoppableStreak  = 3
	drawSpecialistDraw = 3
	neverGiveUpGames   = 10
	breakingFlowLosses = 2
	luckyStrikeWindow  = 1500 * time.Millisecond
)

var despairDifficulties = []entity.Difficulty{entity.DifficultyStrategist, entity.DifficultyPunisher}

// definition pairs catalog metadata with the predicate that unlocks it.
type definition struct {
	entity.Achievement
	check func(in Input) bool
}

func definitions() []definition {
	return []definition{
		{
			Achievement: entity.Achievement{ID: FirstWin, Name: "First Blood", Description: "Win your very first game."},
			check:       func(in Input) bool { return in.Stats.PlayerWins >= 1 },
		},
		despairTier(MasterOfDespairBronze, "Apprentice of Despair", "Win 1 game against The Strategist or Punisher.", 1),
		despairTier(MasterOfDespairSilver, "Master of Despair", "Win 5 games against The Strategist or Punisher.", 5),
		despairTier(MasterOfDespairGold, "Grandmaster of Despair", "Win 10 games against The Strategist or Punisher.", 10),
		despairTier(MasterOfDespairPlatinum, "Lord of Despair", "Win 25 games against The Strategist or Punisher.", 25),
		{
			Achievement: entity.Achievement{ID: UnstoppableForce, Name: "Unstoppable Force", Description: "Win 3 games in a row.", Threshold: unstoppableStreak},
			check:       func(in Input) bool { return in.Stats.ConsecutivePlayerWins >= unstoppableStreak },
		},
		{
			Achievement: entity.Achievement{ID: PerfectGame, Name: "Flawless Victory", Description: "Win without the AI placing a single mark."},
			check: func(in Input) bool {
				return in.won() && in.Outcome.FlawlessPossible
			},
		},
		{
			Achievement: entity.Achievement{ID: BreakingFlow, Name: "Breaking the Flow", Description: "Defeat the AI when it has won 2+ games in a row."},
			check: func(in Input) bool {
				return in.won() && in.Outcome.PriorConsecutiveLosses >= breakingFlowLosses
			},
		},
		{
			Achievement: entity.Achievement{ID: DrawSpecialist, Name: "Draw Specialist", Description: "Achieve 3 draws.", Threshold: drawSpecialistDraw},
			check:       func(in Input) bool { return in.Stats.Draws >= drawSpecialistDraw },
		},
		{
			Achievement: entity.Achievement{ID: NeverGiveUp, Name: "Never Give Up", Description: "Play 10 games without a win."},
			check: func(in Input) bool {
				return in.Stats.TotalGames >= neverGiveUpGames && in.Stats.PlayerWins == 0
			},
		},
		modeTier(SuddenDeathSurvivor, "Sudden Death Survivor", "Win 1 game in Sudden Death mode.", entity.ModeSuddenDeath, 1),
		modeTier(SuddenDeathChampion, "Sudden Death Champion", "Win 5 games in Sudden Death mode.", entity.ModeSuddenDeath, 5),
		modeTier(BlindPlayInitiate, "Blind Sense", "Win 1 game in Blind Play mode.", entity.ModeBlindPlay, 1),
		modeTier(DailyChallengeConqueror, "Daily Champion", "Win 1 Daily Challenge.", entity.ModeDailyChallenge, 1),
		{
			Achievement: entity.Achievement{
				ID:          TacticalGenius,
				Name:        "Tactical Genius",
				Description: "Win by creating an unblockable fork (two simultaneous winning lines).",
				Secret:      true,
			},
			// Approximation: a full-length win with the AI on four marks.
			check: func(in Input) bool {
				return in.won() &&
					entity.Count(in.Outcome.Board, entity.X) == 5 &&
					entity.Count(in.Outcome.Board, entity.O) == 4
			},
		},
		{
			Achievement: entity.Achievement{
				ID:          LuckyStrike,
				Name:        "Lucky Strike",
				Description: "Win with a critical last-second move in Sudden Death.",
				Secret:      true,
			},
			check: func(in Input) bool {
				return in.won() &&
					in.Outcome.Mode == entity.ModeSuddenDeath &&
					in.Outcome.DecidingTurnRemaining > 0 &&
					in.Outcome.DecidingTurnRemaining <= luckyStrikeWindow
			},
		},
		{
			Achievement: entity.Achievement{ID: ThemesUnlocked, Name: "Fashionista", Description: "Unlock all themes.", Secret: true},
			check:       func(in Input) bool { return in.Settings.AllThemesApplied() },
		},
	}
}

func despairTier(id, name, description string, threshold int) definition {
	return definition{
		Achievement: entity.Achievement{
			ID:           id,
			Name:         name,
			Description:  description,
			Threshold:    threshold,
			Difficulties: despairDifficulties,
		},
		check: func(in Input) bool {
			for _, difficulty := range despairDifficulties {
				if in.Stats.WinsByDifficulty[difficulty] >= threshold {
					return true
				}
			}

			return false
		},
	}
}

func modeTier(id, name, description string, mode entity.Mode, threshold int) definition {
	return definition{
		Achievement: entity.Achievement{
			ID:          id,
			Name:        name,
			Description: description,
			Threshold:   threshold,
			Mode:        mode,
		},
		check: func(in Input) bool {
			return in.Stats.WinsByMode[mode] >= threshold
		},
	}
}
