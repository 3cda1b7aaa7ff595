// Package achievement evaluates the unlock rules against a profile and the last game outcome.
package achievement

import "github.com/rocketscienceinc/tictactoe-despair/internal/entity"

// Input is what the rules look at. Outcome is nil for evaluations outside a game, such as a theme change.
type Input struct {
	Stats    entity.Stats
	Settings entity.Settings
	Outcome  *entity.GameOutcome
}

func (that Input) won() bool {
	return that.Outcome != nil && that.Outcome.PlayerWon()
}

type Engine struct {
	definitions []definition
	byID        map[string]int
}

func NewEngine() *Engine {
	defs := definitions()

	byID := make(map[string]int, len(defs))
	for i, def := range defs {
		byID[def.ID] = i
	}

	return &Engine{definitions: defs, byID: byID}
}

// Evaluate returns the ids whose rule holds and which are not unlocked yet, in catalog order.
// It does not modify unlocked.
func (that *Engine) Evaluate(in Input, unlocked map[string]bool) []string {
	var ids []string

	for _, def := range that.definitions {
		if unlocked[def.ID] {
			continue
		}

		if def.check(in) {
			ids = append(ids, def.ID)
		}
	}

	return ids
}

// Catalog returns every achievement with its unlock state taken from unlocked.
func (that *Engine) Catalog(unlocked map[string]bool) []entity.Achievement {
	out := make([]entity.Achievement, 0, len(that.definitions))
	for _, def := range that.definitions {
		a := def.Achievement
		a.Difficulties = append([]entity.Difficulty(nil), def.Difficulties...)
		a.Unlocked = unlocked[def.ID]
		out = append(out, a)
	}

	return out
}

// Lookup returns the catalog entry for id.
func (that *Engine) Lookup(id string) (entity.Achievement, bool) {
	i, ok := that.byID[id]
	if !ok {
		return entity.Achievement{}, false
	}

	return that.definitions[i].Achievement, true
}

// IDs lists the catalog ids in order.
func (that *Engine) IDs() []string {
	ids := make([]string, 0, len(that.definitions))
	for _, def := range that.definitions {
		ids = append(ids, def.ID)
	}

	return ids
}
