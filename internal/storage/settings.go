// Package storage persists user preferences as YAML, or TOML when the file
// name ends in .toml.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pomodo7o/internal/ui/preferences"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type fileSettings struct {
	WorkMinutes int   `yaml:"work_minutes" toml:"work_minutes"`
	RestMinutes int   `yaml:"rest_minutes" toml:"rest_minutes"`
	TickSeconds int   `yaml:"tick_seconds" toml:"tick_seconds"`
	AutoStart   *bool `yaml:"auto_start,omitempty" toml:"auto_start,omitempty"`
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData fileSettings
	if isTOML(path) {
		if err := toml.Unmarshal(rawData, &fileData); err != nil {
			return settings, fmt.Errorf("parse settings toml: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(rawData, &fileData); err != nil {
			return settings, fmt.Errorf("parse settings yaml: %w", err)
		}
	}

	applyFileSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to path, creating its directory.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	autoStart := settings.AutoStart
	fileData := fileSettings{
		WorkMinutes: int(settings.WorkDuration / time.Minute),
		RestMinutes: int(settings.RestDuration / time.Minute),
		TickSeconds: int(settings.TickInterval / time.Second),
		AutoStart:   &autoStart,
	}

	var serialized []byte
	var err error
	if isTOML(path) {
		serialized, err = toml.Marshal(fileData)
		if err != nil {
			return fmt.Errorf("marshal settings toml: %w", err)
		}
	} else {
		serialized, err = yaml.Marshal(fileData)
		if err != nil {
			return fmt.Errorf("marshal settings yaml: %w", err)
		}
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func applyFileSettings(settings *preferences.Settings, fileData fileSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.RestMinutes > 0 {
		settings.RestDuration = time.Duration(fileData.RestMinutes) * time.Minute
	}
	if fileData.TickSeconds > 0 {
		tick := time.Duration(fileData.TickSeconds) * time.Second
		if tick <= settings.WorkDuration && tick <= settings.RestDuration {
			settings.TickInterval = tick
		}
	}
	if fileData.AutoStart != nil {
		settings.AutoStart = *fileData.AutoStart
	}
}
