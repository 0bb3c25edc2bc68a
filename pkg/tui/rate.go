package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keycoach/keycoach/pkg/strength"
)

// rateTab holds the Rate tab state: a focused text input and a progress
// bar used as the strength meter. The typed candidate lives only inside
// the input model.
type rateTab struct {
	input textinput.Model
	meter progress.Model
}

func newRateTab() rateTab {
	ti := textinput.New()
	ti.Placeholder = "type a candidate password"
	ti.Prompt = "> "
	ti.CharLimit = 128
	ti.Focus()

	meter := progress.New(
		progress.WithScaledGradient("#d70000", "#00d700"),
		progress.WithoutPercentage(),
	)
	meter.Width = 30

	return rateTab{input: ti, meter: meter}
}

func (m Model) updateRate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.rate.input.Reset()
		return m, nil
	}
	var cmd tea.Cmd
	m.rate.input, cmd = m.rate.input.Update(msg)
	return m, cmd
}

func (m Model) viewRate() string {
	var sb strings.Builder

	sb.WriteString(labelStyle.Render("Rate a candidate"))
	sb.WriteString("\n\n")
	sb.WriteString(m.rate.input.View())
	sb.WriteString("\n\n")

	candidate := m.rate.input.Value()
	if candidate == "" {
		sb.WriteString(dimStyle.Render("  The candidate stays on this screen; it is never stored."))
		return sb.String()
	}

	report := strength.Estimate(candidate)
	level := strength.Classify(report.Bits)
	sb.WriteString(m.rate.meter.ViewAs(level.Intensity()))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%.1f bits over a pool of %d  %s",
		report.Bits, report.PoolSize,
		levelStyle(level).Render(level.String())))
	return sb.String()
}
