package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HybridFit theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few icons.

const (
	IconWorkout = "🏋️"
	IconRest    = "🛌"
	IconMeal    = "🍽️"
	IconWater   = "💧"
	IconDone    = "✅"
	IconPending = "⬜"
	IconFire    = "🔥"
	IconClock   = "⏰"
	IconWarn    = "⚠️"
	IconChart   = "📊"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// CheckIcon renders a completion marker.
func CheckIcon(done bool) string {
	if done {
		return IconDone
	}
	return IconPending
}

// ProgressBar renders a fixed-width [###---] bar.
func ProgressBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// MacroLine renders "consumed/goal" with a warning color once over goal.
func MacroLine(label string, consumed, goal int, unit string) string {
	value := fmt.Sprintf("%d/%d%s", consumed, goal, unit)
	if consumed > goal {
		value = Warn.Render(value)
	}
	return fmt.Sprintf("%s %s %s", Key.Render(label+":"), value, ProgressBar(consumed, goal, 14))
}
