package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeconds_JSON(t *testing.T) {
	t.Run("No record is null", func(t *testing.T) {
		data, err := json.Marshal(NoRecord())

		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("Record is a number", func(t *testing.T) {
		data, err := json.Marshal(Seconds(4.25))

		require.NoError(t, err)
		assert.Equal(t, "4.25", string(data))
	})

	t.Run("Null decodes to no record", func(t *testing.T) {
		var s Seconds
		require.NoError(t, json.Unmarshal([]byte("null"), &s))

		assert.False(t, s.IsRecord())
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		var s Seconds
		assert.Error(t, json.Unmarshal([]byte(`"fast"`), &s))
	})
}

func TestStats_WinRate(t *testing.T) {
	stats := DefaultStats()

	_, ok := stats.WinRate()
	assert.False(t, ok)

	stats.PlayerWins = 1
	stats.AIWins = 3
	stats.Draws = 10

	rate, ok := stats.WinRate()
	assert.True(t, ok)
	assert.InDelta(t, 25.0, rate, 0.0001)
}

func TestProfile_Normalize(t *testing.T) {
	// Given: a profile decoded from a partial record
	profile := &Profile{
		Settings: Settings{Difficulty: "godlike", Mode: ModeBlindPlay, Theme: "neon", AnimationSpeed: -5},
		Stats:    Stats{PlayerWins: 2},
	}

	// When: it is normalized
	profile.Normalize()

	// Then: invalid values fall back and maps exist
	assert.Equal(t, DifficultyStrategist, profile.Settings.Difficulty)
	assert.Equal(t, ModeBlindPlay, profile.Settings.Mode)
	assert.Equal(t, ThemeDark, profile.Settings.Theme)
	assert.Equal(t, 300, profile.Settings.AnimationSpeed)
	assert.Equal(t, 2, profile.Stats.PlayerWins)
	assert.False(t, profile.Stats.FastestSuddenDeathWin.IsRecord())
	assert.Len(t, profile.Stats.WinsByMode, 4)
	assert.Len(t, profile.Stats.WinsByDifficulty, 3)
	assert.NotNil(t, profile.Achievements)
}

func TestProfile_Clone(t *testing.T) {
	// Given: a profile with some history
	profile := DefaultProfile()
	profile.Settings.MarkThemeApplied(ThemeDark)
	profile.Stats.WinsByMode[ModeStandard] = 3
	profile.Achievements["firstWin"] = true

	// When: the clone is mutated
	clone := profile.Clone()
	clone.Settings.MarkThemeApplied(ThemeLight)
	clone.Stats.WinsByMode[ModeStandard] = 99
	clone.Achievements["perfectGame"] = true

	// Then: the original is untouched
	assert.Equal(t, []Theme{ThemeDark}, profile.Settings.ThemesApplied)
	assert.Equal(t, 3, profile.Stats.WinsByMode[ModeStandard])
	assert.NotContains(t, profile.Achievements, "perfectGame")
}

func TestSettings_ThemesApplied(t *testing.T) {
	settings := DefaultSettings()

	assert.True(t, settings.MarkThemeApplied(ThemeDark))
	assert.False(t, settings.MarkThemeApplied(ThemeDark))
	assert.False(t, settings.AllThemesApplied())

	settings.MarkThemeApplied(ThemeMatrix)
	settings.MarkThemeApplied(ThemeLight)

	assert.True(t, settings.AllThemesApplied())
}
