// Package event carries what the game reports to the presentation layer.
package event

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
)

type Kind string

const (
	KindMoveApplied           Kind = "move:applied"
	KindTurnChanged           Kind = "turn:changed"
	KindTimerTick             Kind = "timer:tick"
	KindBlindCellsChanged     Kind = "blind:changed"
	KindGameEnded             Kind = "game:ended"
	KindAchievementUnlocked   Kind = "achievement:unlocked"
	KindNotificationRequested Kind = "notification"
	KindReplayStep            Kind = "replay:step"
)

// Event is a flat envelope. Only the fields relevant to Kind are set.
type Event struct {
	Kind      Kind   `json:"kind"`
	SessionID string `json:"session_id,omitempty"`

	Index            *int                `json:"index,omitempty"`
	Mark             entity.Mark         `json:"mark,omitempty"`
	Player           entity.Mark         `json:"player,omitempty"`
	SecondsRemaining float64             `json:"seconds_remaining,omitempty"`
	Cells            []int               `json:"cells,omitempty"`
	Board            *entity.Board       `json:"board,omitempty"`
	Outcome          *entity.GameOutcome `json:"outcome,omitempty"`
	AchievementID    string              `json:"achievement_id,omitempty"`
	Title            string              `json:"title,omitempty"`
	Message          string              `json:"message,omitempty"`
}

// Sink receives events. Publish must not block for long and must not call back into the game.
type Sink interface {
	Publish(e Event)
}

type discard struct{}

func (discard) Publish(Event) {}

// Discard drops every event.
var Discard Sink = discard{}

// Multi fans an event out to every sink in order.
type Multi []Sink

func (that Multi) Publish(e Event) {
	for _, sink := range that {
		sink.Publish(e)
	}
}

// Recorder keeps every published event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (that *Recorder) Publish(e Event) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.events = append(that.events, e)
}

func (that *Recorder) Events() []Event {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]Event(nil), that.events...)
}

// OfKind returns the recorded events of the given kind, oldest first.
func (that *Recorder) OfKind(kind Kind) []Event {
	that.mu.Lock()
	defer that.mu.Unlock()

	var out []Event
	for _, e := range that.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}

	return out
}

func (that *Recorder) Clear() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.events = nil
}

// Cell wraps a board index for the optional Index field.
func Cell(index int) *int {
	return &index
}
