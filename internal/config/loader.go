package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "rps.yaml"

// LoadRPS loads the game configuration.
// Search order: customPath -> ~/.rps/configs/rps.yaml -> ./configs/rps.yaml -> embedded default
func LoadRPS(customPath string) (RPSConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

func load(customPath string) (RPSConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RPSConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultRPSYAML)
	if err != nil {
		return DefaultRPSConfig(), nil
	}
	return cfg, nil
}

// decode reads YAML on top of the defaults, so keys a file leaves out keep
// their default values. The target is left unset so that a preset given
// without target_wins still picks its own target in Validate.
func decode(data []byte) (RPSConfig, error) {
	cfg := DefaultRPSConfig()
	cfg.Match.TargetWins = 0
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RPSConfig{}, err
	}
	return cfg, nil
}

// Parse decodes YAML bytes into a validated configuration. Missing keys
// take their default values.
func Parse(data []byte) (RPSConfig, error) {
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	cfg.Validate()
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg RPSConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to the user's config file.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rps", "configs", filename)
}

// UserConfigDir returns ~/.rps/configs, or "" when the home directory is unknown.
func UserConfigDir() string {
	p := userConfigPath(fileName)
	if p == "" {
		return ""
	}
	return filepath.Dir(p)
}
