package strength

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level buckets an entropy estimate for display. Levels order from
// weakest to strongest, so they compare with < and >.
type Level int

const (
	VeryWeak Level = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

// Classify maps estimated bits onto a Level. Boundaries are inclusive on
// the lower edge: exactly 30 bits is Weak, exactly 100 is VeryStrong.
func Classify(bits float64) Level {
	switch {
	case bits < 30:
		return VeryWeak
	case bits < 60:
		return Weak
	case bits < 80:
		return Moderate
	case bits < 100:
		return Strong
	default:
		return VeryStrong
	}
}

// String returns the human-readable label for the level.
func (l Level) String() string {
	switch l {
	case VeryWeak:
		return "very weak"
	case Weak:
		return "weak"
	case Moderate:
		return "moderate"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very strong"
	default:
		return "unknown"
	}
}

// Color returns the ANSI color for the level, red through bright green.
func (l Level) Color() lipgloss.Color {
	switch l {
	case VeryWeak:
		return lipgloss.Color("1")
	case Weak:
		return lipgloss.Color("3")
	case Moderate:
		return lipgloss.Color("11")
	case Strong:
		return lipgloss.Color("2")
	case VeryStrong:
		return lipgloss.Color("10")
	default:
		return lipgloss.Color("7")
	}
}

// Intensity scales the level onto (0, 1] in even steps, for driving
// progress bars and similar proportional displays.
func (l Level) Intensity() float64 {
	if l < VeryWeak || l > VeryStrong {
		return 0
	}
	return float64(l+1) / 5
}

// Meter renders a fixed-width strength bar in the level's color. Width
// is the total number of cells; the filled portion follows Intensity.
func Meter(l Level, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(l.Intensity() * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(l.Color()).Render(bar)
}
