package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UrgencyColor returns the style for the given urgency level.
func UrgencyColor(level string) lipgloss.Style {
	switch domain.UrgencyLevel(level) {
	case domain.UrgencyCritical:
		return StyleRed
	case domain.UrgencyHigh:
		return StyleYellow
	case domain.UrgencyMedium:
		return StyleBlue
	default:
		return StyleGreen
	}
}

// UrgencyIndicator returns a colored urgency marker such as "● CRITICAL".
func UrgencyIndicator(level string) string {
	return UrgencyColor(level).Render("● " + strings.ToUpper(level))
}

// DayTypeBadge returns a colored day-type label, marking lab days.
func DayTypeBadge(dayType string, isLabDay bool) string {
	label := strings.ToUpper(dayType)
	if isLabDay {
		label += " (LAB)"
	}
	switch domain.DayType(dayType) {
	case domain.DayExam:
		return StyleRed.Render(label)
	case domain.DayHoliday, domain.DayWeekend:
		return StyleGreen.Render(label)
	case domain.DayLab:
		return StyleYellow.Render(label)
	case domain.DayCollege:
		if isLabDay {
			return StyleYellow.Render(label)
		}
		return StyleBlue.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
