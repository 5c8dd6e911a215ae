package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"pomodo7o/internal/storage"
	"pomodo7o/internal/ui/preferences"

	"github.com/sirupsen/logrus"
)

// Options holds the command-line flags. Zero durations leave the settings
// file value in place.
type Options struct {
	ConfigPath  string
	Work        time.Duration
	Rest        time.Duration
	Tick        time.Duration
	LogLevel    string
	NoAutoStart bool
}

// Session is the resolved runtime input of a command.
type Session struct {
	Settings     preferences.Settings
	SettingsPath string
	Logger       *logrus.Logger
}

// Apply overrides settings with the flags that were given.
func (options Options) Apply(settings preferences.Settings) preferences.Settings {
	if options.Work > 0 {
		settings.WorkDuration = options.Work
	}
	if options.Rest > 0 {
		settings.RestDuration = options.Rest
	}
	if options.Tick > 0 {
		settings.TickInterval = options.Tick
	}
	if options.NoAutoStart {
		settings.AutoStart = false
	}
	return settings
}

func prepare(options *Options) (Session, error) {
	logger, err := newLogger(options.LogLevel, os.Stderr)
	if err != nil {
		return Session{}, err
	}

	settings, path, err := resolveSettings(*options)
	if err != nil {
		return Session{}, err
	}

	logger.WithFields(logrus.Fields{
		"settings": path,
		"work":     settings.WorkDuration,
		"rest":     settings.RestDuration,
		"tick":     settings.TickInterval,
	}).Debug("settings resolved")

	return Session{Settings: settings, SettingsPath: path, Logger: logger}, nil
}

// resolveSettings layers defaults, the settings file and the flags.
func resolveSettings(options Options) (preferences.Settings, string, error) {
	path := options.ConfigPath
	if path == "" {
		defaultPath, err := storage.DefaultPath(AppName)
		if err != nil {
			return preferences.Settings{}, "", err
		}
		path = defaultPath
	}

	settings, err := storage.LoadSettings(path)
	if err != nil {
		return preferences.Settings{}, path, err
	}

	settings = options.Apply(settings)
	if err := settings.CycleConfig().Validate(); err != nil {
		return preferences.Settings{}, path, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, path, nil
}

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	return logger, nil
}
