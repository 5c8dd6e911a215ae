package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  Settings
	onSave    func(Settings)
	onCancel  func()
	workMin   *widget.Entry
	restMin   *widget.Entry
	tickSec   *widget.Entry
	autoStart *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodo7o Settings")

	workMin := widget.NewEntry()
	restMin := widget.NewEntry()
	tickSec := widget.NewEntry()
	autoStart := widget.NewCheck("Start the work phase on launch", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), workMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Rest"), restMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Refresh every"), tickSec, widget.NewLabel("sec")),
		autoStart,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(340, 240))

	prefs := &Window{
		window:    window,
		onSave:    onSave,
		workMin:   workMin,
		restMin:   restMin,
		tickSec:   tickSec,
		autoStart: autoStart,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// SetOnCancel registers a handler for the cancel button.
func (prefs *Window) SetOnCancel(handler func()) {
	prefs.onCancel = handler
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workMin.SetText(fmt.Sprintf("%d", int(settings.WorkDuration.Minutes())))
	prefs.restMin.SetText(fmt.Sprintf("%d", int(settings.RestDuration.Minutes())))
	prefs.tickSec.SetText(fmt.Sprintf("%d", int(settings.TickInterval.Seconds())))
	prefs.autoStart.SetChecked(settings.AutoStart)
}

// Settings returns the last saved or loaded settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// collect reads the form. Fields that do not parse, or would leave a tick
// longer than a phase, keep their previous value.
func (prefs *Window) collect() Settings {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workMin.Text); ok {
		settings.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.restMin.Text); ok {
		settings.RestDuration = time.Duration(minutes) * time.Minute
	}
	if seconds, ok := parsePositiveInt(prefs.tickSec.Text); ok {
		settings.TickInterval = time.Duration(seconds) * time.Second
	}
	if settings.CycleConfig().Validate() != nil {
		settings.TickInterval = prefs.settings.TickInterval
	}
	if settings.CycleConfig().Validate() != nil {
		settings = prefs.settings
	}
	settings.AutoStart = prefs.autoStart.Checked

	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
