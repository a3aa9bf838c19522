package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/masa/internal/history"
	"github.com/faizmokh/masa/internal/logbook"
	"github.com/faizmokh/masa/internal/timer"
)

// Model owns Bubble Tea state for the timer screen. Commands run against the
// controller synchronously so each mutation is saved before the next key is
// handled.
type Model struct {
	ctrl *timer.Controller
	nav  *history.Navigator
	tick time.Duration

	keys  KeyMap
	help  help.Model
	gauge progress.Model
	input textinput.Model

	mode         mode
	editingID    string
	editingLabel string
	quitPending  bool

	width      int
	height     int
	statusLine string
	errorLine  string
	err        error
}

type mode uint8

const (
	modeNormal mode = iota
	modeEditNote
)

type tickMsg time.Time

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctrl *timer.Controller, nav *history.Navigator, tick time.Duration) Model {
	if tick <= 0 {
		tick = 200 * time.Millisecond
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "what are you up to?"
	input.CharLimit = 256
	input.Width = 48

	return Model{
		ctrl:       ctrl,
		nav:        nav,
		tick:       tick,
		keys:       DefaultKeyMap,
		help:       help.New(),
		gauge:      progress.New(progress.WithGradient(string(colorIdle), string(colorWork)), progress.WithoutPercentage(), progress.WithWidth(30)),
		input:      input,
		mode:       modeNormal,
		statusLine: "Press space to start working.",
	}
}

// Err reports a save failure the user chose to quit through.
func (m Model) Err() error {
	return m.err
}

// Init starts the animation tick.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update wires TUI state transitions from user input and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeEditNote {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.gauge.Width = max(10, msg.Width-companionWidth-12)
		return m, nil
	case tickMsg:
		// The displayed day follows the wall clock, so a selection may have
		// rolled off at midnight.
		m.nav.Revalidate()
		return m, m.tickCmd()
	default:
		if m.mode == modeEditNote {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Quit) {
		m.quitPending = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Toggle):
		to, err := m.ctrl.Toggle()
		m.report(err, fmt.Sprintf("Now %s.", strings.ToLower(to.String())))
	case key.Matches(msg, m.keys.Stop):
		if m.ctrl.Mode() == logbook.ModeIdle {
			m.statusLine = "Already idle."
			m.errorLine = ""
			return m, nil
		}
		m.report(m.ctrl.Stop(), "Stopped. Idle.")
	case key.Matches(msg, m.keys.NoteActive):
		active, ok := m.ctrl.ActiveSession()
		if !ok {
			m.statusLine = ""
			m.errorLine = "No session to annotate."
			return m, nil
		}
		return m.beginNote(active, "Edit current")
	case key.Matches(msg, m.keys.NoteEntry):
		id, ok := m.nav.SelectedSessionRef()
		if !ok {
			return m, nil
		}
		session, ok := m.ctrl.Log().Find(id)
		if !ok {
			m.report(logbook.ErrSessionNotFound, "")
			return m, nil
		}
		return m.beginNote(session, "Edit past entry")
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.Up):
		m.nav.SelectPrev()
		m.describeSelection()
	case key.Matches(msg, m.keys.Down):
		m.nav.SelectNext()
		m.describeSelection()
	case key.Matches(msg, m.keys.PrevDay):
		m.nav.ChangeDay(-1)
		m.describeDay()
	case key.Matches(msg, m.keys.NextDay):
		m.nav.ChangeDay(1)
		m.describeDay()
	case key.Matches(msg, m.keys.Today):
		m.nav.Today()
		m.describeDay()
	case key.Matches(msg, m.keys.Clear):
		m.nav.ClearSelection()
		m.statusLine = ""
		m.errorLine = ""
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitNote()
	case tea.KeyEsc:
		return m.cancelNote("Cancelled.")
	case tea.KeyCtrlC:
		m = m.resetInput()
		return m.quit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) beginNote(session logbook.Session, label string) (tea.Model, tea.Cmd) {
	m.mode = modeEditNote
	m.editingID = session.ID
	m.editingLabel = fmt.Sprintf("%s (%s %s)", label, session.Mode, m.clock(session.Start))
	m.input.SetValue(session.Note)
	m.input.CursorEnd()
	m.statusLine = ""
	m.errorLine = ""
	return m, m.input.Focus()
}

func (m Model) submitNote() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	err := m.ctrl.SetNote(m.editingID, text)
	m = m.resetInput()
	m.report(err, "Note saved.")
	return m, nil
}

func (m Model) cancelNote(message string) (tea.Model, tea.Cmd) {
	m = m.resetInput()
	m.statusLine = message
	m.errorLine = ""
	return m, nil
}

func (m Model) resetInput() Model {
	m.mode = modeNormal
	m.editingID = ""
	m.editingLabel = ""
	m.input.Reset()
	m.input.Blur()
	return m
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	id, ok := m.nav.SelectedSessionRef()
	if !ok {
		return m, nil
	}
	removed, err := m.ctrl.Delete(id)
	m.nav.ClearSelection()
	m.report(err, fmt.Sprintf("Deleted %s entry from %s.", strings.ToLower(removed.Mode.String()), m.clock(removed.Start)))
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.quitPending {
		m.err = errors.New("quit without saving the latest changes")
		return m, tea.Quit
	}
	if err := m.ctrl.Quit(); err != nil {
		m.quitPending = true
		m.statusLine = ""
		m.errorLine = fmt.Sprintf("Could not save: %v. Press q again to quit anyway.", err)
		return m, nil
	}
	return m, tea.Quit
}

// report turns a controller result into the status and error lines. Missing
// sessions and failed saves are shown but never stop the loop.
func (m *Model) report(err error, success string) {
	m.nav.Revalidate()
	switch {
	case err == nil:
		m.statusLine = success
		m.errorLine = ""
	case errors.Is(err, logbook.ErrPersistenceWrite):
		m.statusLine = success
		m.errorLine = fmt.Sprintf("Warning: not saved (%v); will retry on the next change.", err)
	case errors.Is(err, logbook.ErrSessionNotFound):
		m.statusLine = ""
		m.errorLine = "That session no longer exists."
	default:
		m.statusLine = ""
		m.errorLine = err.Error()
	}
}

func (m *Model) describeSelection() {
	m.errorLine = ""
	idx, ok := m.nav.Selected()
	if !ok {
		m.statusLine = "No entries on this day."
		return
	}
	m.statusLine = fmt.Sprintf("Selected entry %d of %d", idx+1, len(m.nav.Sessions()))
}

func (m *Model) describeDay() {
	m.errorLine = ""
	count := len(m.nav.Sessions())
	day := m.nav.Day().Format("2006-01-02")
	if count == 0 {
		m.statusLine = fmt.Sprintf("%s has no entries.", day)
		return
	}
	m.statusLine = fmt.Sprintf("%s: %d entr%s.", day, count, plural(count))
}

func (m Model) clock(t time.Time) string {
	return t.In(m.ctrl.Log().Location()).Format("15:04")
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
