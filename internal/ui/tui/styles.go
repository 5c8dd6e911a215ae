package tui

import (
	"pomodo7o/internal/core/cycle"
	"pomodo7o/internal/core/urgency"

	"github.com/charmbracelet/lipgloss"
)

// Colors mirrors the desktop band palette.
var Colors = struct {
	Normal lipgloss.Color
	Paused lipgloss.Color
	Error  lipgloss.Color
	Work   lipgloss.Color
	Rest   lipgloss.Color
	Muted  lipgloss.Color
}{
	Normal: lipgloss.Color("#43A047"),
	Paused: lipgloss.Color("#FBC02D"),
	Error:  lipgloss.Color("#E53935"),
	Work:   lipgloss.Color("#FF7043"),
	Rest:   lipgloss.Color("#29B6F6"),
	Muted:  lipgloss.Color("#636E72"),
}

// Styles contains the lipgloss styles for the terminal timer.
type Styles struct {
	App    lipgloss.Style
	Title  lipgloss.Style
	Mode   lipgloss.Style
	Timer  lipgloss.Style
	Status lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App:    lipgloss.NewStyle().Padding(1, 2),
		Title:  lipgloss.NewStyle().Bold(true),
		Mode:   lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),
		Timer:  lipgloss.NewStyle().Bold(true),
		Status: lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}

// PhaseColor returns the title color of a phase.
func PhaseColor(phase cycle.Phase) lipgloss.Color {
	if phase == cycle.PhaseRest {
		return Colors.Rest
	}
	return Colors.Work
}

// BandColor returns the countdown color of an urgency band.
func BandColor(band urgency.Band) lipgloss.Color {
	switch band {
	case urgency.BandError:
		return Colors.Error
	case urgency.BandPaused:
		return Colors.Paused
	default:
		return Colors.Normal
	}
}
