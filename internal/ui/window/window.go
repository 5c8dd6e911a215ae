// Package window is the desktop timer window: a progress bar tinted by
// urgency band, an overlay badge and the reset/play/pause controls.
package window

import (
	"image/color"

	"pomodo7o/internal/core/urgency"
	"pomodo7o/internal/ui/presenter"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Icons are the resources used by the window.
type Icons struct {
	Rest  fyne.Resource
	Pause fyne.Resource
	Play  fyne.Resource
	Reset fyne.Resource
}

// Callbacks defines control handlers.
type Callbacks struct {
	OnPlay  func()
	OnPause func()
	OnReset func()
}

// Window manages the timer UI.
type Window struct {
	window      fyne.Window
	icons       Icons
	titleLabel  *canvas.Text
	modeLabel   *canvas.Text
	timerLabel  *canvas.Text
	badge       *canvas.Image
	bandStrip   *canvas.Rectangle
	progress    *widget.ProgressBar
	resetButton *widget.Button
	playButton  *widget.Button
	pauseButton *widget.Button
	frame       presenter.Frame
}

var (
	colorNormal = color.NRGBA{R: 67, G: 160, B: 71, A: 255}
	colorPaused = color.NRGBA{R: 251, G: 192, B: 45, A: 255}
	colorError  = color.NRGBA{R: 229, G: 57, B: 53, A: 255}
	colorText   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// New creates the timer window. It is not shown until Show is called.
func New(app fyne.App, icons Icons, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomodo7o")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	titleLabel := canvas.NewText("Work", colorText)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 21

	modeLabel := canvas.NewText("Paused", colorText)
	modeLabel.TextSize = 14

	timerLabel := canvas.NewText("--:--", colorText)
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 32
	timerLabel.Alignment = fyne.TextAlignCenter

	badge := canvas.NewImageFromResource(nil)
	badge.FillMode = canvas.ImageFillContain
	badge.SetMinSize(fyne.NewSize(32, 32))

	bandStrip := canvas.NewRectangle(colorNormal)
	bandStrip.SetMinSize(fyne.NewSize(0, 6))

	progress := widget.NewProgressBar()
	progress.Min = 0
	progress.Max = 100

	resetButton := widget.NewButtonWithIcon("Reset", icons.Reset, func() {
		invoke(callbacks.OnReset)
	})
	playButton := widget.NewButtonWithIcon("Start", icons.Play, func() {
		invoke(callbacks.OnPlay)
	})
	pauseButton := widget.NewButtonWithIcon("Pause", icons.Pause, func() {
		invoke(callbacks.OnPause)
	})

	header := container.NewBorder(nil, nil, nil, badge, container.NewVBox(titleLabel, modeLabel))
	buttons := container.NewHBox(resetButton, layout.NewSpacer(), playButton, pauseButton)
	content := container.NewVBox(header, timerLabel, progress, bandStrip, buttons)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(320, 200))

	timerWindow := &Window{
		window:      window,
		icons:       icons,
		titleLabel:  titleLabel,
		modeLabel:   modeLabel,
		timerLabel:  timerLabel,
		badge:       badge,
		bandStrip:   bandStrip,
		progress:    progress,
		resetButton: resetButton,
		playButton:  playButton,
		pauseButton: pauseButton,
	}
	timerWindow.renderUnsafe(presenter.Frame{})
	return timerWindow
}

// Show displays the window.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// SetCloseIntercept replaces the close behaviour, e.g. hide to tray.
func (timerWindow *Window) SetCloseIntercept(handler func()) {
	timerWindow.window.SetCloseIntercept(handler)
}

// Hide hides the window.
func (timerWindow *Window) Hide() {
	timerWindow.window.Hide()
}

// Render draws frame. Safe to call from any goroutine.
func (timerWindow *Window) Render(frame presenter.Frame) {
	fyne.Do(func() {
		timerWindow.renderUnsafe(frame)
	})
}

// Frame returns the last rendered frame.
func (timerWindow *Window) Frame() presenter.Frame {
	return timerWindow.frame
}

func (timerWindow *Window) renderUnsafe(frame presenter.Frame) {
	timerWindow.frame = frame

	timerWindow.titleLabel.Text = presenter.PhaseTitle(frame.Phase)
	timerWindow.titleLabel.Refresh()
	timerWindow.modeLabel.Text = frame.Mode()
	timerWindow.modeLabel.Refresh()
	timerWindow.timerLabel.Text = presenter.FormatRemaining(frame.Remaining)
	timerWindow.timerLabel.Refresh()

	timerWindow.progress.SetValue(float64(frame.Percent))
	timerWindow.bandStrip.FillColor = bandColor(frame.Band)
	timerWindow.bandStrip.Refresh()

	timerWindow.badge.Resource = timerWindow.overlayIcon(frame.Overlay())
	if timerWindow.badge.Resource == nil {
		timerWindow.badge.Hide()
	} else {
		timerWindow.badge.Show()
	}
	timerWindow.badge.Refresh()

	if frame.ShowPlay() {
		timerWindow.playButton.Show()
	} else {
		timerWindow.playButton.Hide()
	}
	if frame.ShowPause() {
		timerWindow.pauseButton.Show()
	} else {
		timerWindow.pauseButton.Hide()
	}
}

func (timerWindow *Window) overlayIcon(overlay presenter.Overlay) fyne.Resource {
	switch overlay {
	case presenter.OverlayRest:
		return timerWindow.icons.Rest
	case presenter.OverlayPause:
		return timerWindow.icons.Pause
	default:
		return nil
	}
}

func bandColor(band urgency.Band) color.Color {
	switch band {
	case urgency.BandError:
		return colorError
	case urgency.BandPaused:
		return colorPaused
	default:
		return colorNormal
	}
}

func invoke(callback func()) {
	if callback != nil {
		callback()
	}
}
