package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/minitype/internal/model"
	"github.com/verte-zerg/minitype/internal/session"
	"github.com/verte-zerg/minitype/internal/stats"
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	ctrl *session.Controller
	keys KeyMap
	help help.Model

	width  int
	height int

	inputRunes []rune
	snap       session.Snapshot
	err        error
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	overflowStyle    = incorrectStyle.Strikethrough(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	resultStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// NewModel constructs a typing TUI model around ctrl.
func NewModel(ctrl *session.Controller) *Model {
	return &Model{
		ctrl: ctrl,
		keys: DefaultKeyMap,
		help: help.New(),
		snap: ctrl.Snapshot(),
	}
}

// Result returns the score of the active session if it has finished.
func (m *Model) Result() (model.Result, bool) {
	if m.snap.Result == nil {
		return model.Result{}, false
	}
	return *m.snap.Result, true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste {
		m.dispatch(session.Paste{Text: string(msg.Runes)})
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		m.inputRunes = nil
		m.dispatch(session.Restart{})
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.dispatch(session.Submit{})
		return m, nil
	}
	if m.snap.State == session.Finished {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.inputRunes) == 0 {
			return m, nil
		}
		m.inputRunes = m.inputRunes[:len(m.inputRunes)-1]
	case tea.KeySpace:
		m.inputRunes = append(m.inputRunes, ' ')
	case tea.KeyRunes:
		m.inputRunes = append(m.inputRunes, msg.Runes...)
	default:
		return m, nil
	}
	m.dispatch(session.Keystroke{Text: string(m.inputRunes)})
	return m, nil
}

func (m *Model) dispatch(ev session.Event) {
	snap, err := m.ctrl.Dispatch(ev)
	m.snap = snap
	m.err = err
	if snap.State == session.Finished {
		m.inputRunes = []rune(snap.Typed)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	targetRunes := []rune(m.snap.Target)
	if len(targetRunes) == 0 {
		return ""
	}
	cursorIndex := -1
	if m.snap.State != session.Finished && len(m.inputRunes) < len(targetRunes) {
		cursorIndex = len(m.inputRunes)
	}
	styledRunes := buildStyledRunes(targetRunes, m.inputRunes, m.snap.Classes, cursorIndex)
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(styledRunes) + "\n" + footer
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	footerHeight := lipgloss.Height(footer)
	body := lipgloss.Place(m.width, m.height-footerHeight, lipgloss.Center, lipgloss.Center, content)
	footerBlock := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
	return body + "\n" + footerBlock
}

func (m *Model) renderFooter() string {
	lines := []string{}
	if res := m.snap.Result; res != nil {
		lines = append(lines, resultStyle.Render(formatResult(*res)))
	} else {
		lines = append(lines, footerStyle.Render(m.progressLine()))
	}
	if m.err != nil {
		lines = append(lines, errorStyle.Render(m.err.Error()))
	}
	lines = append(lines, m.help.ShortHelpView(m.keys.ShortHelp()))
	return strings.Join(lines, "\n")
}

func (m *Model) progressLine() string {
	targetLen := len([]rune(m.snap.Target))
	progress := 0
	if targetLen > 0 {
		progress = min(100, int(float64(len(m.inputRunes))/float64(targetLen)*100))
	}
	if m.snap.State == session.NotStarted {
		return fmt.Sprintf("%d words · start typing", len(m.snap.Words))
	}
	return fmt.Sprintf("Progress %d%%", progress)
}

func formatResult(res model.Result) string {
	return fmt.Sprintf("Time %ss · %s WPM · %s", stats.FormatElapsed(res), stats.FormatWPM(res), stats.FormatAccuracy(res))
}
