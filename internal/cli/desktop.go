package cli

import (
	"errors"
	"fmt"
	"sync"

	"pomodo7o/internal/core/cycle"
	"pomodo7o/internal/platform"
	"pomodo7o/internal/storage"
	"pomodo7o/internal/ui/preferences"
	"pomodo7o/internal/ui/presenter"
	"pomodo7o/internal/ui/tray"
	"pomodo7o/internal/ui/window"
	"pomodo7o/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/sirupsen/logrus"
)

const eventBuffer = 16

// desktopSession glues one orchestrator to the window and the tray. The
// orchestrator is replaced when preferences are saved.
type desktopSession struct {
	mu           sync.Mutex
	orchestrator *cycle.Orchestrator
	settings     preferences.Settings
	settingsPath string
	logger       logrus.FieldLogger

	desktopApp  desktop.App
	timerWindow *window.Window
	trayManager *tray.Manager
	trayOverlay presenter.Overlay
}

func runDesktop(session Session) error {
	logger := session.Logger

	guard, err := platform.AcquireSingleInstance(AppName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Warn("another instance is already running")
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomodo7o.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconTomato))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return errors.New("system tray unsupported on this platform")
	}

	state := &desktopSession{
		settings:     session.Settings,
		settingsPath: session.SettingsPath,
		logger:       logger,
		desktopApp:   desktopApp,
		trayOverlay:  presenter.Overlay("unset"),
	}

	state.timerWindow = window.New(fyneApp, window.Icons{
		Rest:  resources.MustIcon(resources.IconRest),
		Pause: resources.MustIcon(resources.IconPause),
		Play:  resources.MustIcon(resources.IconPlay),
		Reset: resources.MustIcon(resources.IconReset),
	}, window.Callbacks{
		OnPlay:  func() { state.current().Start() },
		OnPause: func() { state.current().Pause() },
		OnReset: func() { state.current().Reset() },
	})
	state.timerWindow.SetCloseIntercept(state.timerWindow.Hide)

	prefsWindow := preferences.New(fyneApp, session.Settings, state.handleSave)

	state.trayManager = tray.New(desktopApp, tray.Callbacks{
		OnShow:        state.timerWindow.Show,
		OnToggle:      func() { state.current().Toggle() },
		OnReset:       func() { state.current().Reset() },
		OnPreferences: prefsWindow.Show,
		OnQuit: func() {
			state.close()
			fyneApp.Quit()
		},
	})

	if err := state.rebuild(session.Settings); err != nil {
		return err
	}

	state.timerWindow.Show()
	fyneApp.Run()
	state.close()
	return nil
}

func (state *desktopSession) current() *cycle.Orchestrator {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.orchestrator
}

// rebuild replaces the running cycle with one built from settings.
func (state *desktopSession) rebuild(settings preferences.Settings) error {
	orchestrator, err := cycle.Build(settings.CycleConfig(), cycle.Config{Logger: state.logger})
	if err != nil {
		return fmt.Errorf("build cycle: %w", err)
	}

	state.mu.Lock()
	previous := state.orchestrator
	state.orchestrator = orchestrator
	state.settings = settings
	state.mu.Unlock()

	if previous != nil {
		previous.Close()
	}
	state.listen(orchestrator)
	return nil
}

// listen renders every event of orchestrator until it is closed.
func (state *desktopSession) listen(orchestrator *cycle.Orchestrator) {
	events := orchestrator.Subscribe(eventBuffer)
	frame := presenter.FromEvent(orchestrator.State())
	state.render(frame)

	go func() {
		for event := range events {
			frame = frame.Apply(event)
			state.render(frame)
		}
	}()
}

func (state *desktopSession) render(frame presenter.Frame) {
	state.timerWindow.Render(frame)
	fyne.Do(func() {
		state.trayManager.SetStatus(frame.Status())
		state.trayManager.SetMode(frame.Mode())
		state.trayManager.SetRunning(frame.Running)
		state.setTrayIcon(frame.Overlay())
	})
}

func (state *desktopSession) setTrayIcon(overlay presenter.Overlay) {
	if overlay == state.trayOverlay {
		return
	}
	state.trayOverlay = overlay

	switch overlay {
	case presenter.OverlayRest:
		state.desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.IconRest))
	case presenter.OverlayPause:
		state.desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.IconPause))
	default:
		state.desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.IconTomato))
	}
}

func (state *desktopSession) handleSave(settings preferences.Settings) {
	if err := storage.SaveSettings(state.settingsPath, settings); err != nil {
		state.logger.WithError(err).Error("save settings")
	}
	if err := state.rebuild(settings); err != nil {
		state.logger.WithError(err).Error("apply settings")
		return
	}
	state.logger.WithField("settings", state.settingsPath).Info("settings applied")
}

func (state *desktopSession) close() {
	state.mu.Lock()
	orchestrator := state.orchestrator
	state.mu.Unlock()
	if orchestrator != nil {
		orchestrator.Close()
	}
}
