package desktop

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rps-arcade/internal/config"
)

func testStorage(t *testing.T) *SettingsStore {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	m, err := OpenStorage(fmt.Sprintf("rps_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("storage unavailable: %v", err)
	}
	return NewSettingsStore(m, SettingsFrom(config.DefaultRPSConfig()), log.New(io.Discard))
}

func TestSettingsMemoryOnly(t *testing.T) {
	s := NewSettingsStore(nil, Settings{TargetWins: 5, ButtonSize: 150, Bordered: true}, nil)
	s.Update(func(v *Settings) { v.TargetWins = 7 })

	if got := s.Settings().TargetWins; got != 7 {
		t.Errorf("TargetWins = %d, want 7", got)
	}
	if err := s.Save(); err != nil {
		t.Errorf("Save with no storage: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Errorf("Load with no storage: %v", err)
	}
	if got := s.Settings().TargetWins; got != 5 {
		t.Errorf("after Load TargetWins = %d, want defaults (5)", got)
	}
}

func TestSettingsClamped(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{"in range", Settings{3, 120, true}, Settings{3, 120, true}},
		{"target low", Settings{0, 120, false}, Settings{config.MinTargetWins, 120, false}},
		{"target high", Settings{1000, 120, false}, Settings{config.MaxTargetWins, 120, false}},
		{"button small", Settings{3, 10, false}, Settings{3, config.MinButtonSize, false}},
		{"button big", Settings{3, 500, false}, Settings{3, config.MaxButtonSize, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettingsStore(nil, tt.in, nil)
			if got := s.Settings(); got != tt.want {
				t.Errorf("Settings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettingsPersist(t *testing.T) {
	s := testStorage(t)
	s.Update(func(v *Settings) {
		v.TargetWins = 9
		v.ButtonSize = 170
		v.Bordered = false
	})

	reopened := NewSettingsStore(s.manager, SettingsFrom(config.DefaultRPSConfig()), nil)
	want := Settings{TargetWins: 9, ButtonSize: 170, Bordered: false}
	if got := reopened.Settings(); got != want {
		t.Errorf("reloaded settings = %+v, want %+v", got, want)
	}
}

func TestSettingsMissingUsesDefaults(t *testing.T) {
	s := testStorage(t)
	want := SettingsFrom(config.DefaultRPSConfig())
	if got := s.Settings(); got != want {
		t.Errorf("Settings() = %+v, want defaults %+v", got, want)
	}
}
