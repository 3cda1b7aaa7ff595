package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
)

const (
	actionGameNew     = "game:new"
	actionGameMove    = "game:move"
	actionGameReset   = "game:reset"
	actionGameLeave   = "game:leave"
	actionGameState   = "game:state"
	actionThemeApply  = "theme:apply"
	actionSettings    = "settings:update"
	actionStatsReset  = "stats:reset"
	actionReplayPlay  = "replay:play"
	actionReplayNext  = "replay:next"
	actionReplayPrev  = "replay:prev"
	actionReplayPause = "replay:pause"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is what clients send. Only the fields relevant to the action are set.
type Payload struct {
	SessionID  string            `json:"session_id,omitempty"`
	Cell       *int              `json:"cell,omitempty"`
	Mode       entity.Mode       `json:"mode,omitempty"`
	Difficulty entity.Difficulty `json:"difficulty,omitempty"`
	Theme      entity.Theme      `json:"theme,omitempty"`
	Settings   *entity.Settings  `json:"settings,omitempty"`
}

// StatePayload is a full snapshot sent after commands and on connect.
type StatePayload struct {
	Session entity.GameSession `json:"session"`
	Hidden  []int              `json:"hidden"`
	Twist   string             `json:"twist"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return b
}
