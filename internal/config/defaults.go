package config

import _ "embed"

//go:embed defaults/rps.yaml
var defaultRPSYAML []byte

// DefaultRPSConfig returns the hard-coded default configuration.
func DefaultRPSConfig() RPSConfig {
	return RPSConfig{
		Match: MatchConfig{
			Preset:        MatchClassic,
			TargetWins:    3,
			RevealDelayMs: 1500,
		},
		Battle: BattleConfig{
			BaseAmplitude: 40,
		},
		Celebration: CelebrationConfig{
			DurationMs:  15000,
			OverlayPath: "celebration.gif",
		},
		Display: DisplayConfig{
			Width:      680,
			Height:     420,
			ButtonSize: 120,
			Bordered:   true,
			ImageDir:   "images",
			Skin:       "auto",
		},
		Labels: LabelsConfig{
			Win:       "YOU WIN!",
			Lose:      "YOU LOSE!",
			Draw:      "DRAW!",
			Idle:      "?",
			Prompt:    "Choose your weapon!",
			MatchWon:  "You won the match! Press reset to play again.",
			MatchLost: "The computer won the match! Press reset to play again.",
			Player:    "YOU",
			Computer:  "COMPUTER",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRPSYAML
}
