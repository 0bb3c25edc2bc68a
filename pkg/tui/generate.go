package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keycoach/keycoach/pkg/charset"
	"github.com/keycoach/keycoach/pkg/password"
	"github.com/keycoach/keycoach/pkg/strength"
)

// generateTab holds the state of the Generate tab: which classes are
// enabled, the requested length, and the most recent result.
type generateTab struct {
	cursor  int
	enabled map[charset.Class]bool
	length  int
	value   string
	report  strength.Report
}

func newGenerateTab(length int, classes []charset.Class) generateTab {
	g := generateTab{
		enabled: make(map[charset.Class]bool, len(classes)),
		length:  length,
	}
	for _, c := range classes {
		g.enabled[c] = true
	}
	return g
}

// selection returns the enabled classes in catalog order.
func (g generateTab) selection() []charset.Class {
	var out []charset.Class
	for _, c := range charset.All() {
		if g.enabled[c] {
			out = append(out, c)
		}
	}
	return out
}

func (g generateTab) enabledCount() int {
	n := 0
	for _, on := range g.enabled {
		if on {
			n++
		}
	}
	return n
}

func (m Model) updateGenerate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.gen.cursor > 0 {
			m.gen.cursor--
		}
	case "down", "j":
		if m.gen.cursor < len(charset.All())-1 {
			m.gen.cursor++
		}
	case " ":
		c := charset.All()[m.gen.cursor]
		// The last enabled class stays on; a generator with an empty
		// pool has nothing to draw from.
		if !m.gen.enabled[c] || m.gen.enabledCount() > 1 {
			m.gen.enabled[c] = !m.gen.enabled[c]
		}
	case "+", "=":
		if m.gen.length < password.MaxLength {
			m.gen.length++
		}
	case "-", "_":
		if m.gen.length > 1 {
			m.gen.length--
		}
	case "g", "enter":
		value, err := password.Generate(m.src, m.gen.length, m.gen.selection())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.gen.value = value
		m.gen.report = strength.Estimate(value)
	}
	return m, nil
}

func (m Model) viewGenerate() string {
	var sb strings.Builder

	sb.WriteString(labelStyle.Render("Character classes"))
	sb.WriteString("\n")
	for i, c := range charset.All() {
		cursor := "  "
		if i == m.gen.cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.gen.enabled[c] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, mark, c)
		if i == m.gen.cursor {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\nLength: %d\n\n", m.gen.length))

	if m.gen.value == "" {
		sb.WriteString(dimStyle.Render("  Press g to generate a password."))
		return sb.String()
	}

	level := strength.Classify(m.gen.report.Bits)
	sb.WriteString(valueStyle.Render(m.gen.value))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s  %.1f bits  %s",
		strength.Meter(level, meterWidth(m.width)),
		m.gen.report.Bits,
		levelStyle(level).Render(level.String())))
	return sb.String()
}
