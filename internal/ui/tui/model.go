// Package tui renders the cycle in a terminal using bubbletea.
package tui

import (
	"fmt"
	"strings"

	"pomodo7o/internal/core/cycle"
	"pomodo7o/internal/ui/presenter"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxProgressWidth = 60

// Controller is the part of the orchestrator driven by keys.
type Controller interface {
	Toggle()
	Reset()
	State() cycle.Event
}

// eventMsg carries one orchestrator event into the update loop.
type eventMsg cycle.Event

// closedMsg is sent when the event channel is closed.
type closedMsg struct{}

// Model represents the terminal timer.
type Model struct {
	controller Controller
	events     <-chan cycle.Event
	frame      presenter.Frame
	progress   progress.Model
	help       help.Model
	keys       KeyMap
	styles     Styles
	quitting   bool
}

// NewModel creates a model seeded from the controller state.
func NewModel(controller Controller, events <-chan cycle.Event) Model {
	return Model{
		controller: controller,
		events:     events,
		frame:      presenter.FromEvent(controller.State()),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		help:       help.New(),
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
	}
}

// Init starts listening for cycle events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Frame returns the current display state.
func (m Model) Frame() presenter.Frame {
	return m.frame
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.controller.Toggle()
		case key.Matches(msg, m.keys.Reset):
			m.controller.Reset()
		}
		return m, nil

	case eventMsg:
		m.frame = m.frame.Apply(cycle.Event(msg))
		return m, waitForEvent(m.events)

	case closedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-4, maxProgressWidth)
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View renders the timer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := m.frame
	title := m.styles.Title.Foreground(PhaseColor(frame.Phase)).Render(presenter.PhaseTitle(frame.Phase))
	mode := m.styles.Mode.Render(frame.Mode())
	countdown := m.styles.Timer.Foreground(BandColor(frame.Band)).Render(presenter.FormatRemaining(frame.Remaining))

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", mode))
	b.WriteString("\n\n")
	b.WriteString(countdown)
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(float64(frame.Percent) / 100))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Status.Render(fmt.Sprintf("%s · sessions: %d", frame.Status(), frame.Sessions)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

// waitForEvent returns a tea.Cmd that blocks on the next cycle event.
func waitForEvent(events <-chan cycle.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}
