package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/roster"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// queryLines is the number of result-pane lines used by the query prompt.
const queryLines = 2

// Model is the Bubble Tea model for incremental contact search.
// Typed characters are appended to the query; nothing removes them.
// Enter ends the session when the text typed since the previous Enter
// is "exit".
type Model struct {
	search   *roster.Search
	line     string
	results  []contact.Record
	cursor   int
	done     bool
	width    int
	height   int
	keys     keyMap
	viewport viewport.Model
	help     help.Model
	details  *detailCache
}

// ModelOption configures optional Model settings.
type ModelOption func(*Model)

// WithInitialQuery prefills the search query.
func WithInitialQuery(q string) ModelOption {
	return func(m *Model) {
		m.search.Append(q)
	}
}

// NewModel creates a search Model over contacts.
func NewModel(contacts []contact.Record, opts ...ModelOption) Model {
	m := Model{
		search:   roster.NewSearch(contacts),
		keys:     SearchKeyMap(),
		viewport: viewport.New(0, 0),
		help:     help.New(),
		details:  newDetailCache(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refresh()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Query returns the accumulated search query.
func (m Model) Query() string {
	return m.search.Query()
}

// Results returns the contacts matching the current query.
func (m Model) Results() []contact.Record {
	return m.results
}

// Selected returns the contact under the cursor, if any.
func (m Model) Selected() (contact.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return contact.Record{}, false
	}
	return m.results[m.cursor], true
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, rightWidth := PaneWidths(msg.Width)
		m.viewport.Width = max(rightWidth-borderChrome, 0)
		m.viewport.Height = m.contentHeight()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		if roster.IsExit(m.line) {
			m.done = true
			return m, tea.Quit
		}
		m.line = ""
		return m, nil

	case key.Matches(msg, m.keys.Erase):
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.results) > 0 {
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.results) - 1
			}
			m.showSelected()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if len(m.results) > 0 {
			m.cursor++
			if m.cursor >= len(m.results) {
				m.cursor = 0
			}
			m.showSelected()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.typed(string(msg.Runes))
	case tea.KeySpace:
		m.typed(" ")
	}
	return m, nil
}

// typed appends text to the query and the current line.
func (m *Model) typed(text string) {
	m.search.Append(text)
	m.line += text
	m.refresh()
}

// refresh re-runs the search and resets the cursor to the first match.
func (m *Model) refresh() {
	m.results = m.search.Results()
	m.cursor = 0
	m.showSelected()
}

// showSelected loads the selected contact's details into the viewport.
func (m *Model) showSelected() {
	r, ok := m.Selected()
	if !ok {
		m.viewport.SetContent(mutedText.Render("No matching contacts"))
		return
	}
	m.viewport.SetContent(m.details.render(r))
	m.viewport.GotoTop()
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the results pane, detail pane, and help bar.
func (m Model) View() string {
	if m.done {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	leftPane := FocusedBorder().
		Width(leftWidth - borderChrome).
		Height(contentHeight).
		Render(m.viewResults(contentHeight))
	rightPane := UnfocusedBorder().
		Width(rightWidth - borderChrome).
		Height(contentHeight).
		Render(m.viewport.View())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	return lipgloss.JoinVertical(lipgloss.Left, panes, m.help.View(m.keys))
}

// viewResults renders the query prompt and as many matches as fit.
func (m Model) viewResults(height int) string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("Search: "))
	b.WriteString(m.search.Query())
	b.WriteByte('\n')
	b.WriteString(mutedText.Render(fmt.Sprintf("%d of %d", len(m.results), m.search.Len())))

	rows := max(height-queryLines, 0)
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	for i := start; i < len(m.results) && i < start+rows; i++ {
		b.WriteByte('\n')
		if i == m.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		b.WriteString(m.results[i].DisplayName())
	}
	return b.String()
}
