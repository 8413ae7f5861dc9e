package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded): %v", err)
	}
	if cfg != DefaultRPSConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultRPSConfig())
	}
}

func TestValidateClamps(t *testing.T) {
	tests := []struct {
		name       string
		target     int
		button     int
		wantTarget int
		wantButton int
	}{
		{"in range", 5, 150, 5, 150},
		{"zero uses defaults", 0, 0, 3, 120},
		{"negative target", -4, 120, MinTargetWins, 120},
		{"huge target", 1000, 120, MaxTargetWins, 120},
		{"small button", 3, 10, 3, MinButtonSize},
		{"large button", 3, 999, 3, MaxButtonSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg RPSConfig
			cfg.Match.TargetWins = tt.target
			cfg.Display.ButtonSize = tt.button
			cfg.Validate()
			if cfg.Match.TargetWins != tt.wantTarget {
				t.Errorf("TargetWins = %d, want %d", cfg.Match.TargetWins, tt.wantTarget)
			}
			if cfg.Display.ButtonSize != tt.wantButton {
				t.Errorf("ButtonSize = %d, want %d", cfg.Display.ButtonSize, tt.wantButton)
			}
		})
	}
}

func TestValidateFillsLabels(t *testing.T) {
	cfg := RPSConfig{Labels: LabelsConfig{Win: "DU GEWINNST!"}}
	cfg.Validate()
	if cfg.Labels.Win != "DU GEWINNST!" {
		t.Errorf("Win = %q, custom label overwritten", cfg.Labels.Win)
	}
	if cfg.Labels.Lose != "YOU LOSE!" {
		t.Errorf("Lose = %q, want default", cfg.Labels.Lose)
	}
}

func TestPresetOnlyConfig(t *testing.T) {
	cfg, err := Parse([]byte("match:\n  preset: marathon\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Match.TargetWins != 10 {
		t.Errorf("TargetWins = %d, want 10", cfg.Match.TargetWins)
	}
}

func TestTargetForPreset(t *testing.T) {
	tests := []struct {
		preset MatchPreset
		want   int
	}{
		{MatchQuick, 1},
		{MatchClassic, 3},
		{MatchLong, 5},
		{MatchMarathon, 10},
		{"bogus", 3},
	}
	for _, tt := range tests {
		if got := TargetForPreset(tt.preset); got != tt.want {
			t.Errorf("TargetForPreset(%q) = %d, want %d", tt.preset, got, tt.want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("long"); !ok || p != MatchLong {
		t.Errorf("ParsePreset(long) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("forever"); ok {
		t.Error("ParsePreset(forever) should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("match:\n  target_wins: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadRPS(path)
	if err != nil {
		t.Fatalf("LoadRPS: %v", err)
	}
	if cfg.Match.TargetWins != 7 {
		t.Errorf("TargetWins = %d, want 7", cfg.Match.TargetWins)
	}
	if cfg.Celebration.DurationMs != 15000 {
		t.Errorf("DurationMs = %d, want default 15000", cfg.Celebration.DurationMs)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadRPS(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("match: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRPS(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := LoadRPS("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Match.TargetWins != 3 {
		t.Errorf("embedded TargetWins = %d, want 3", cfg.Match.TargetWins)
	}

	local := filepath.Join(work, "configs")
	if err := os.MkdirAll(local, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(local, fileName), []byte("match:\n  target_wins: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadRPS("")
	if cfg.Match.TargetWins != 4 {
		t.Errorf("local TargetWins = %d, want 4", cfg.Match.TargetWins)
	}

	user := filepath.Join(home, ".rps", "configs")
	if err := os.MkdirAll(user, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(user, fileName), []byte("match:\n  target_wins: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadRPS("")
	if cfg.Match.TargetWins != 9 {
		t.Errorf("user TargetWins = %d, want 9", cfg.Match.TargetWins)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := DefaultRPSConfig()
	want.Match.TargetWins = 42
	data, err := Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("match:\n  target_wins: 5\n"))
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultRPSConfig()
	want.Match.TargetWins = 5
	if cfg != want {
		t.Errorf("partial config = %+v, want defaults with target 5: %+v", cfg, want)
	}
	if cfg.Match.RevealDelayMs != 1500 {
		t.Errorf("RevealDelayMs = %d, want 1500", cfg.Match.RevealDelayMs)
	}
	if cfg.Celebration.OverlayPath != "celebration.gif" {
		t.Errorf("OverlayPath = %q, want default", cfg.Celebration.OverlayPath)
	}
	if !cfg.Display.Bordered {
		t.Error("Bordered should keep its default")
	}
}

func TestPartialConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "labels:\n  win: \"GEWONNEN!\"\ndisplay:\n  button_size: 150\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadRPS(path)
	if err != nil {
		t.Fatalf("LoadRPS: %v", err)
	}
	if cfg.Labels.Win != "GEWONNEN!" || cfg.Display.ButtonSize != 150 {
		t.Errorf("overrides lost: win=%q button=%d", cfg.Labels.Win, cfg.Display.ButtonSize)
	}
	if cfg.Match.RevealDelayMs != 1500 || cfg.Display.Width != 680 || cfg.Display.Skin != "auto" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestExplicitValuesOverrideDefaults(t *testing.T) {
	data := "match:\n  reveal_delay_ms: 0\ncelebration:\n  overlay_path: \"\"\ndisplay:\n  bordered: false\n"
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Match.RevealDelayMs != 0 {
		t.Errorf("RevealDelayMs = %d, want explicit 0", cfg.Match.RevealDelayMs)
	}
	if cfg.Celebration.OverlayPath != "" {
		t.Errorf("OverlayPath = %q, want explicit empty", cfg.Celebration.OverlayPath)
	}
	if cfg.Display.Bordered {
		t.Error("Bordered = true, want explicit false")
	}
}

func TestPresetWithExplicitTarget(t *testing.T) {
	cfg, err := Parse([]byte("match:\n  preset: quick\n  target_wins: 4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Match.Preset != MatchQuick || cfg.Match.TargetWins != 4 {
		t.Errorf("match = %+v, want quick with target 4", cfg.Match)
	}
}

func TestCelebrationPacingNotConfigurable(t *testing.T) {
	data := "celebration:\n  duration_ms: 3000\n  tick_interval_ms: 5\n  spawn_chance: 1\n"
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	want := CelebrationConfig{DurationMs: 3000, OverlayPath: "celebration.gif"}
	if cfg.Celebration != want {
		t.Errorf("Celebration = %+v, want %+v", cfg.Celebration, want)
	}
	out, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"tick_interval_ms", "spawn_chance"} {
		if strings.Contains(string(out), key) {
			t.Errorf("marshaled config exposes %s", key)
		}
	}
}
