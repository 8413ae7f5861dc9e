package desktop

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rps-arcade/internal/config"
	"github.com/vovakirdan/rps-arcade/internal/core"
)

// Settings are the window preferences kept between runs.
type Settings struct {
	TargetWins int  `yaml:"target_wins"`
	ButtonSize int  `yaml:"button_size"`
	Bordered   bool `yaml:"bordered"`
}

// SettingsFrom takes the defaults from the loaded configuration.
func SettingsFrom(cfg config.RPSConfig) Settings {
	return Settings{
		TargetWins: cfg.Match.TargetWins,
		ButtonSize: cfg.Display.ButtonSize,
		Bordered:   cfg.Display.Bordered,
	}
}

func (s Settings) clamped() Settings {
	s.TargetWins = core.Clamp(s.TargetWins, config.MinTargetWins, config.MaxTargetWins)
	s.ButtonSize = core.Clamp(s.ButtonSize, config.MinButtonSize, config.MaxButtonSize)
	return s
}

const (
	settingsObject   = "settings"
	settingsProperty = "window"
)

// OpenStorage opens the per-user data directory for appName.
func OpenStorage(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("desktop: open storage: %w", err)
	}
	return m, nil
}

// SettingsStore loads and saves Settings. A nil manager keeps settings
// in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	defaults Settings
	settings Settings
	logger   *log.Logger
}

// NewSettingsStore creates a store and loads any saved settings. A load
// failure is logged and the defaults are used.
func NewSettingsStore(manager *gdata.Manager, defaults Settings, logger *log.Logger) *SettingsStore {
	s := &SettingsStore{
		manager:  manager,
		defaults: defaults.clamped(),
		settings: defaults.clamped(),
		logger:   logger,
	}
	if err := s.Load(); err != nil && logger != nil {
		logger.Warn("could not load settings, using defaults", "err", err)
	}
	return s
}

// Load reads saved settings. Missing settings are not an error.
func (s *SettingsStore) Load() error {
	s.settings = s.defaults
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("desktop: load settings: %w", err)
	}
	loaded := s.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("desktop: parse settings: %w", err)
	}
	s.settings = loaded.clamped()
	return nil
}

// Save writes the current settings.
func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("desktop: marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("desktop: save settings: %w", err)
	}
	return nil
}

// Settings returns the current settings.
func (s *SettingsStore) Settings() Settings {
	return s.settings
}

// Update changes the settings in memory and saves them. Save failures
// are logged; the new values stay in effect.
func (s *SettingsStore) Update(fn func(*Settings)) {
	fn(&s.settings)
	s.settings = s.settings.clamped()
	if err := s.Save(); err != nil && s.logger != nil {
		s.logger.Warn("could not save settings", "err", err)
	}
}
