package config

// RPSConfig holds all tunable settings for a rock-paper-scissors session.
type RPSConfig struct {
	Match       MatchConfig       `yaml:"match"`
	Battle      BattleConfig      `yaml:"battle"`
	Celebration CelebrationConfig `yaml:"celebration"`
	Display     DisplayConfig     `yaml:"display"`
	Labels      LabelsConfig      `yaml:"labels"`
}

// MatchConfig defines match length and round pacing.
type MatchConfig struct {
	Preset        MatchPreset `yaml:"preset"`
	TargetWins    int         `yaml:"target_wins"`
	RevealDelayMs int         `yaml:"reveal_delay_ms"` // pause between shake end and score update
}

// BattleConfig defines the shake animation.
type BattleConfig struct {
	BaseAmplitude float64 `yaml:"base_amplitude"`
}

// CelebrationConfig defines the particle celebration that follows a won match.
// The tick rate and rocket spawn chance are fixed by the particle engine.
type CelebrationConfig struct {
	DurationMs  int    `yaml:"duration_ms"`
	OverlayPath string `yaml:"overlay_path"` // optional animated GIF, skipped when missing
}

// DisplayConfig defines the logical drawing surface.
type DisplayConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	ButtonSize int    `yaml:"button_size"`
	Bordered   bool   `yaml:"bordered"`
	ImageDir   string `yaml:"image_dir"`
	Skin       string `yaml:"skin"`
}

// LabelsConfig holds the user-facing texts.
type LabelsConfig struct {
	Win       string `yaml:"win"`
	Lose      string `yaml:"lose"`
	Draw      string `yaml:"draw"`
	Idle      string `yaml:"idle"`
	Prompt    string `yaml:"prompt"`
	MatchWon  string `yaml:"match_won"`
	MatchLost string `yaml:"match_lost"`
	Player    string `yaml:"player"`
	Computer  string `yaml:"computer"`
}

const (
	MinTargetWins = 1
	MaxTargetWins = 100
	MinButtonSize = 80
	MaxButtonSize = 200
)

// Validate clamps out-of-range values and fills empty fields from defaults.
func (c *RPSConfig) Validate() {
	def := DefaultRPSConfig()

	if c.Match.Preset != "" && c.Match.TargetWins == 0 {
		c.Match.TargetWins = TargetForPreset(c.Match.Preset)
	}
	if c.Match.TargetWins == 0 {
		c.Match.TargetWins = def.Match.TargetWins
	}
	c.Match.TargetWins = clamp(c.Match.TargetWins, MinTargetWins, MaxTargetWins)
	if c.Match.RevealDelayMs < 0 {
		c.Match.RevealDelayMs = def.Match.RevealDelayMs
	}

	if c.Battle.BaseAmplitude <= 0 {
		c.Battle.BaseAmplitude = def.Battle.BaseAmplitude
	}

	if c.Celebration.DurationMs <= 0 {
		c.Celebration.DurationMs = def.Celebration.DurationMs
	}

	if c.Display.Width <= 0 {
		c.Display.Width = def.Display.Width
	}
	if c.Display.Height <= 0 {
		c.Display.Height = def.Display.Height
	}
	if c.Display.ButtonSize == 0 {
		c.Display.ButtonSize = def.Display.ButtonSize
	}
	c.Display.ButtonSize = clamp(c.Display.ButtonSize, MinButtonSize, MaxButtonSize)
	if c.Display.ImageDir == "" {
		c.Display.ImageDir = def.Display.ImageDir
	}
	if c.Display.Skin == "" {
		c.Display.Skin = def.Display.Skin
	}

	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&c.Labels.Win, def.Labels.Win)
	fill(&c.Labels.Lose, def.Labels.Lose)
	fill(&c.Labels.Draw, def.Labels.Draw)
	fill(&c.Labels.Idle, def.Labels.Idle)
	fill(&c.Labels.Prompt, def.Labels.Prompt)
	fill(&c.Labels.MatchWon, def.Labels.MatchWon)
	fill(&c.Labels.MatchLost, def.Labels.MatchLost)
	fill(&c.Labels.Player, def.Labels.Player)
	fill(&c.Labels.Computer, def.Labels.Computer)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
