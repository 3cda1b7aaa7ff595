package entity

import "time"

type Difficulty string

const (
	DifficultyZen        Difficulty = "zen"
	DifficultyStrategist Difficulty = "strategist"
	DifficultyPunisher   Difficulty = "punisher"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyZen, DifficultyStrategist, DifficultyPunisher:
		return true
	default:
		return false
	}
}

type Mode string

const (
	ModeStandard       Mode = "standard"
	ModeSuddenDeath    Mode = "suddenDeath"
	ModeBlindPlay      Mode = "blindPlay"
	ModeDailyChallenge Mode = "dailyChallenge"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeStandard, ModeSuddenDeath, ModeBlindPlay, ModeDailyChallenge:
		return true
	default:
		return false
	}
}

const (
	StatusSetup      = "setup"
	StatusInProgress = "in_progress"
	StatusTerminal   = "terminal"
)

// GameSession is the state of one game. The controller owns it exclusively.
type GameSession struct {
	ID               string     `json:"id"`
	Board            Board      `json:"board"`
	CurrentPlayer    Mark       `json:"current_player"`
	Mode             Mode       `json:"mode"`
	Difficulty       Difficulty `json:"difficulty"`
	Status           string     `json:"status"`
	Active           bool       `json:"active"`
	FlawlessPossible bool       `json:"flawless_possible"`
	TurnStartedAt    time.Time  `json:"turn_started_at"`
	StartedAt        time.Time  `json:"started_at"`
	Plies            int        `json:"plies"`
	DailyIndex       int        `json:"daily_index,omitempty"`
}

func (that GameSession) IsTerminal() bool {
	return that.Status == StatusTerminal
}

func (that GameSession) IsInProgress() bool {
	return that.Status == StatusInProgress && that.Active
}

// Result classifies how a session ended.
type Result string

const (
	ResultPlayerWin Result = "player_win"
	ResultAIWin     Result = "ai_win"
	ResultDraw      Result = "draw"
	ResultTimeout   Result = "timeout"
)

// GameOutcome is raised once per session when it reaches the terminal state.
type GameOutcome struct {
	SessionID  string     `json:"session_id"`
	Result     Result     `json:"result"`
	Winner     Mark       `json:"winner,omitempty"`
	Line       *[3]int    `json:"line,omitempty"`
	TimedOut   Mark       `json:"timed_out,omitempty"`
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
	Board      Board      `json:"board"`

	FlawlessPossible       bool          `json:"flawless_possible"`
	PriorConsecutiveLosses int           `json:"prior_consecutive_losses"`
	DecidingTurnRemaining  time.Duration `json:"deciding_turn_remaining"`
	Duration               time.Duration `json:"duration"`
}

// PlayerWon reports a win by X placed on the board. Timeouts are not wins here.
func (that GameOutcome) PlayerWon() bool {
	return that.Result == ResultPlayerWin
}
