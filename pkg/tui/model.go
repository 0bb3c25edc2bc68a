// Package tui provides the interactive practice session for keycoach.
// It is built on the bubbletea/lipgloss stack and renders three tabs:
// Generate, Rate, and Quiz. Everything runs locally; nothing typed into
// a session is logged or stored anywhere.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keycoach/keycoach/pkg/charset"
	"github.com/keycoach/keycoach/pkg/content"
	"github.com/keycoach/keycoach/pkg/password"
	"github.com/keycoach/keycoach/pkg/secrand"
	"github.com/keycoach/keycoach/pkg/strength"
)

// ---------------------------------------------------------------------------
// Shared styles
// ---------------------------------------------------------------------------

var (
	// titleStyle renders the application title bar.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	// activeTabStyle renders the currently selected tab label.
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	// inactiveTabStyle renders unselected tab labels.
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	// labelStyle is used for section headings inside a tab.
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	// selectedStyle highlights the line under the cursor.
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	// valueStyle renders a generated password.
	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	// correctStyle and wrongStyle mark quiz feedback.
	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))

	wrongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))

	// dimStyle is used for hints and "no data" messages.
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	// statusBarStyle renders the bottom status bar.
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(1)

	// errorStyle renders error messages.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true).
			PaddingLeft(1)
)

// levelStyle colors text by strength level.
func levelStyle(l strength.Level) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(l.Color())
}

// ---------------------------------------------------------------------------
// Tab type
// ---------------------------------------------------------------------------

// tab identifies the currently active tab.
type tab int

const (
	tabGenerate tab = iota
	tabRate
	tabQuiz
	tabCount // sentinel, must stay last
)

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Options configures a practice session. Zero values fall back to the
// usual defaults: length 16, the full class catalog, and the operating
// system's secure random source.
type Options struct {
	Length  int
	Classes []charset.Class
	Source  secrand.Source

	// Questions scopes the quiz. When nil, every question in the
	// library is used.
	Questions []content.Question
}

// Model is the top-level bubbletea model for the practice session.
type Model struct {
	tabs      []string
	activeTab tab
	width     int
	height    int
	err       error
	src       secrand.Source

	gen  generateTab
	rate rateTab
	quiz quizTab
}

// New returns a Model serving the given curriculum.
func New(lib *content.Library, opts Options) Model {
	src := opts.Source
	if src == nil {
		src = secrand.Crypto()
	}
	length := opts.Length
	if length < 1 || length > password.MaxLength {
		length = 16
	}
	classes := charset.Normalize(opts.Classes)
	if len(classes) == 0 {
		classes = charset.All()
	}

	quiz := newQuizTab(lib)
	if opts.Questions != nil {
		quiz = quizTab{questions: opts.Questions}
	}

	m := Model{
		tabs: []string{"Generate", "Rate", "Quiz"},
		src:  src,
		gen:  newGenerateTab(length, classes),
		rate: newRateTab(),
		quiz: quiz,
	}
	m.quiz, m.err = m.quiz.present(src)
	return m
}

// Init starts the cursor blink for the Rate tab's input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes messages and returns an updated model plus any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rate.meter.Width = meterWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses. Ctrl+C and Tab always work; everything
// else depends on the active tab, since the Rate tab owns a focused text
// input that must receive letters, digits, and arrows as typing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		return m, nil
	}

	if m.activeTab == tabRate {
		return m.updateRate(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "right", "l":
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil
	case "left", "h":
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		return m, nil
	case "1":
		m.activeTab = tabGenerate
		return m, nil
	case "2":
		m.activeTab = tabRate
		return m, nil
	case "3":
		m.activeTab = tabQuiz
		return m, nil
	}

	switch m.activeTab {
	case tabGenerate:
		return m.updateGenerate(msg)
	case tabQuiz:
		return m.updateQuiz(msg)
	}
	return m, nil
}

// View renders the entire session to a string.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	var sb strings.Builder

	// --- Title bar ---
	sb.WriteString(titleStyle.Render("  keycoach practice  "))
	sb.WriteString("\n")

	// --- Tab bar ---
	var tabParts []string
	for i, name := range m.tabs {
		label := fmt.Sprintf(" %d: %s ", i+1, name)
		if tab(i) == m.activeTab {
			tabParts = append(tabParts, activeTabStyle.Render(label))
		} else {
			tabParts = append(tabParts, inactiveTabStyle.Render(label))
		}
	}
	sb.WriteString(strings.Join(tabParts, ""))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")

	// --- Content area ---
	contentHeight := m.height - 5 // title(1) + tabs(1) + divider(1) + status(2)
	if contentHeight < 1 {
		contentHeight = 1
	}
	var content string
	switch m.activeTab {
	case tabGenerate:
		content = m.viewGenerate()
	case tabRate:
		content = m.viewRate()
	case tabQuiz:
		content = m.viewQuiz()
	}
	sb.WriteString(clipLines(content, contentHeight))
	sb.WriteString("\n")

	// --- Status bar ---
	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())

	return sb.String()
}

// renderStatus renders the bottom status bar line.
func (m Model) renderStatus() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var help string
	switch m.activeTab {
	case tabGenerate:
		help = "j/k: move  space: toggle  +/-: length  g: generate  q: quit"
	case tabRate:
		help = "type to rate  esc: clear  tab: next tab  ctrl+c: quit"
	case tabQuiz:
		help = "j/k: move  enter: answer  r: restart  q: quit"
	}
	return statusBarStyle.Render(help)
}

// clipLines limits the string s to at most maxLines newline-delimited lines.
func clipLines(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n")
}

// meterWidth scales the strength meter with the terminal width but keeps
// it readable at both extremes.
func meterWidth(width int) int {
	w := width / 3
	if w < 10 {
		w = 10
	}
	if w > 40 {
		w = 40
	}
	return w
}
