package config

// MatchPreset represents a named match length.
type MatchPreset string

const (
	MatchQuick    MatchPreset = "quick"
	MatchClassic  MatchPreset = "classic"
	MatchLong     MatchPreset = "long"
	MatchMarathon MatchPreset = "marathon"
)

// MatchPresets lists presets from shortest to longest.
var MatchPresets = []MatchPreset{MatchQuick, MatchClassic, MatchLong, MatchMarathon}

// TargetForPreset returns the wins needed to take a match for a preset.
func TargetForPreset(preset MatchPreset) int {
	switch preset {
	case MatchQuick:
		return 1
	case MatchClassic:
		return 3
	case MatchLong:
		return 5
	case MatchMarathon:
		return 10
	default:
		return 3
	}
}

// ParsePreset reports whether s names a known preset.
func ParsePreset(s string) (MatchPreset, bool) {
	for _, p := range MatchPresets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// Describe returns a short menu description of a preset.
func (p MatchPreset) Describe() string {
	switch p {
	case MatchQuick:
		return "First to 1 - sudden death"
	case MatchClassic:
		return "First to 3"
	case MatchLong:
		return "First to 5"
	case MatchMarathon:
		return "First to 10 - bring snacks"
	default:
		return ""
	}
}

// ApplyPreset sets the target wins from a preset.
func (c *RPSConfig) ApplyPreset(p MatchPreset) {
	c.Match.Preset = p
	c.Match.TargetWins = TargetForPreset(p)
}
