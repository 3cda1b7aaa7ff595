package entity

type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeMatrix Theme = "matrix"
)

var Themes = []Theme{ThemeDark, ThemeLight, ThemeMatrix}

func (t Theme) Valid() bool {
	for _, theme := range Themes {
		if theme == t {
			return true
		}
	}

	return false
}

type Settings struct {
	Difficulty        Difficulty `json:"difficulty"`
	Mode              Mode       `json:"gameMode"`
	AutoPlayNextRound bool       `json:"autoPlayNextRound"`
	AnimationSpeed    int        `json:"animationSpeed"`
	SoundEnabled      bool       `json:"soundEnabled"`
	Theme             Theme      `json:"theme"`
	ThemesApplied     []Theme    `json:"themesApplied,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Difficulty:        DifficultyStrategist,
		Mode:              ModeStandard,
		AutoPlayNextRound: true,
		AnimationSpeed:    300,
		SoundEnabled:      true,
		Theme:             ThemeDark,
	}
}

// Normalize replaces unknown enum values with defaults.
func (that *Settings) Normalize() {
	defaults := DefaultSettings()

	if !that.Difficulty.Valid() {
		that.Difficulty = defaults.Difficulty
	}

	if !that.Mode.Valid() {
		that.Mode = defaults.Mode
	}

	if !that.Theme.Valid() {
		that.Theme = defaults.Theme
	}

	if that.AnimationSpeed < 0 {
		that.AnimationSpeed = defaults.AnimationSpeed
	}
}

// MarkThemeApplied records theme usage and reports whether it was new.
func (that *Settings) MarkThemeApplied(theme Theme) bool {
	for _, applied := range that.ThemesApplied {
		if applied == theme {
			return false
		}
	}

	that.ThemesApplied = append(that.ThemesApplied, theme)

	return true
}

func (that Settings) AllThemesApplied() bool {
	for _, theme := range Themes {
		found := false
		for _, applied := range that.ThemesApplied {
			if applied == theme {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// Achievement is a catalog entry together with its unlock state.
type Achievement struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Unlocked     bool         `json:"unlocked"`
	Threshold    int          `json:"threshold,omitempty"`
	Difficulties []Difficulty `json:"difficulty,omitempty"`
	Mode         Mode         `json:"mode,omitempty"`
	Secret       bool         `json:"secret,omitempty"`
}

// Profile is everything the persistence collaborator loads and saves.
type Profile struct {
	Settings     Settings        `json:"settings"`
	Stats        Stats           `json:"stats"`
	Achievements map[string]bool `json:"achievements"`
}

func DefaultProfile() *Profile {
	return &Profile{
		Settings:     DefaultSettings(),
		Stats:        DefaultStats(),
		Achievements: map[string]bool{},
	}
}

func (that *Profile) Normalize() {
	that.Settings.Normalize()
	that.Stats.Normalize()

	if that.Achievements == nil {
		that.Achievements = map[string]bool{}
	}
}

// Clone returns a deep copy.
func (that *Profile) Clone() *Profile {
	out := &Profile{
		Settings:     that.Settings,
		Stats:        that.Stats.Clone(),
		Achievements: make(map[string]bool, len(that.Achievements)),
	}

	out.Settings.ThemesApplied = append([]Theme(nil), that.Settings.ThemesApplied...)

	for id, unlocked := range that.Achievements {
		out.Achievements[id] = unlocked
	}

	return out
}
