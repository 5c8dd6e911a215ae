package tui

import (
	"testing"
	"time"

	"pomodo7o/internal/core/cycle"
	"pomodo7o/internal/core/urgency"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	calls []string
	state cycle.Event
}

func (controller *fakeController) Toggle()            { controller.calls = append(controller.calls, "toggle") }
func (controller *fakeController) Reset()             { controller.calls = append(controller.calls, "reset") }
func (controller *fakeController) State() cycle.Event { return controller.state }

func keyMsg(s string) tea.Msg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(state cycle.Event) (Model, *fakeController, chan cycle.Event) {
	controller := &fakeController{state: state}
	events := make(chan cycle.Event, 4)
	return NewModel(controller, events), controller, events
}

func TestNewModel_SeedsFrameFromState(t *testing.T) {
	m, _, _ := newTestModel(cycle.Event{
		Type:      cycle.EventControl,
		Phase:     cycle.PhaseWork,
		Remaining: 25 * time.Minute,
		Band:      urgency.BandNormal,
	})

	assert.Equal(t, cycle.PhaseWork, m.Frame().Phase)
	assert.Equal(t, 25*time.Minute, m.Frame().Remaining)
	assert.False(t, m.Frame().Running)
}

func TestModel_KeysDriveController(t *testing.T) {
	m, controller, _ := newTestModel(cycle.Event{Phase: cycle.PhaseWork})

	for _, s := range []string{" ", "p", "r", "x"} {
		result, cmd := m.Update(keyMsg(s))
		m = result.(Model)
		assert.Nil(t, cmd, "key %q", s)
	}

	assert.Equal(t, []string{"toggle", "toggle", "reset"}, controller.calls)
}

func TestModel_QuitKey(t *testing.T) {
	m, controller, _ := newTestModel(cycle.Event{})

	result, cmd := m.Update(keyMsg("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, result.(Model).View())
	assert.Empty(t, controller.calls)
}

func TestModel_EventsUpdateFrame(t *testing.T) {
	m, _, events := newTestModel(cycle.Event{Phase: cycle.PhaseWork})

	result, cmd := m.Update(eventMsg(cycle.Event{
		Type:      cycle.EventRemaining,
		Phase:     cycle.PhaseRest,
		Remaining: 45 * time.Second,
		Band:      urgency.BandPaused,
		Running:   true,
	}))
	m = result.(Model)

	assert.Equal(t, cycle.PhaseRest, m.Frame().Phase)
	assert.Equal(t, urgency.BandPaused, m.Frame().Band)
	assert.True(t, m.Frame().Running)

	require.NotNil(t, cmd)
	events <- cycle.Event{Type: cycle.EventProgress, Phase: cycle.PhaseRest, Percent: 85, Running: true}
	next := cmd()
	require.IsType(t, eventMsg{}, next)
	result, _ = m.Update(next)
	assert.Equal(t, 85, result.(Model).Frame().Percent)
}

func TestModel_ClosedChannelQuits(t *testing.T) {
	m, _, events := newTestModel(cycle.Event{})
	close(events)

	msg := m.Init()()
	require.IsType(t, closedMsg{}, msg)

	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowSizeCapsProgress(t *testing.T) {
	m, _, _ := newTestModel(cycle.Event{})

	result, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxProgressWidth, result.(Model).progress.Width)

	result, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 40})
	assert.Equal(t, 26, result.(Model).progress.Width)
}

func TestModel_View(t *testing.T) {
	m, _, _ := newTestModel(cycle.Event{
		Type:      cycle.EventControl,
		Phase:     cycle.PhaseRest,
		Percent:   50,
		Remaining: 2*time.Minute + 30*time.Second,
		Band:      urgency.BandNormal,
		Running:   true,
		Completed: 3,
	})

	view := m.View()

	assert.Contains(t, view, "Rest")
	assert.Contains(t, view, "Rest mode")
	assert.Contains(t, view, "02:30")
	assert.Contains(t, view, "sessions: 3")
	assert.Contains(t, view, "start/pause")
}
