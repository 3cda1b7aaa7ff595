package entity

import (
	"encoding/json"
	"math"
)

// Seconds is a duration in seconds. +Inf means "no record" and is encoded as null.
type Seconds float64

func NoRecord() Seconds {
	return Seconds(math.Inf(1))
}

func (s Seconds) IsRecord() bool {
	return !math.IsInf(float64(s), 0) && !math.IsNaN(float64(s))
}

func (s Seconds) MarshalJSON() ([]byte, error) {
	if !s.IsRecord() {
		return []byte("null"), nil
	}

	return json.Marshal(float64(s))
}

func (s *Seconds) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NoRecord()
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*s = Seconds(v)

	return nil
}

type Stats struct {
	TotalGames              int                `json:"totalGames"`
	PlayerWins              int                `json:"playerWins"`
	AIWins                  int                `json:"aiWins"`
	Draws                   int                `json:"draws"`
	ConsecutivePlayerWins   int                `json:"consecutivePlayerWins"`
	ConsecutivePlayerLosses int                `json:"consecutivePlayerLosses"`
	FastestSuddenDeathWin   Seconds            `json:"fastestSuddenDeathWinTime"`
	WinsByDifficulty        map[Difficulty]int `json:"playerWinsByDifficulty"`
	WinsByMode              map[Mode]int       `json:"playerWinsByMode"`
	LastDailyChallengeDate  string             `json:"lastDailyChallengeDate,omitempty"`
	DailyChallengeIndex     int                `json:"dailyChallengeIndex"`
}

func DefaultStats() Stats {
	return Stats{
		FastestSuddenDeathWin: NoRecord(),
		WinsByDifficulty: map[Difficulty]int{
			DifficultyZen:        0,
			DifficultyStrategist: 0,
			DifficultyPunisher:   0,
		},
		WinsByMode: map[Mode]int{
			ModeStandard:       0,
			ModeSuddenDeath:    0,
			ModeBlindPlay:      0,
			ModeDailyChallenge: 0,
		},
	}
}

// Normalize fills in fields that an older or partial record left out.
func (that *Stats) Normalize() {
	defaults := DefaultStats()

	if that.WinsByDifficulty == nil {
		that.WinsByDifficulty = defaults.WinsByDifficulty
	}

	if that.WinsByMode == nil {
		that.WinsByMode = defaults.WinsByMode
	}

	if that.FastestSuddenDeathWin <= 0 {
		that.FastestSuddenDeathWin = NoRecord()
	}
}

// WinRate is the share of decided games the player won.
func (that Stats) WinRate() (float64, bool) {
	decided := that.PlayerWins + that.AIWins
	if decided == 0 {
		return 0, false
	}

	return float64(that.PlayerWins) / float64(decided) * 100, true
}

// Clone returns a copy that shares no maps with the receiver.
func (that Stats) Clone() Stats {
	out := that
	out.WinsByDifficulty = make(map[Difficulty]int, len(that.WinsByDifficulty))
	for k, v := range that.WinsByDifficulty {
		out.WinsByDifficulty[k] = v
	}

	out.WinsByMode = make(map[Mode]int, len(that.WinsByMode))
	for k, v := range that.WinsByMode {
		out.WinsByMode[k] = v
	}

	return out
}
