// Package format renders compliance reports for terminal display using
// lipgloss.
package format

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7CB7FF")
	// SuccessColor indicates passing rules and low risk.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings and medium risk.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates critical issues and high risk.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")
)

// Styles contains all styling definitions for report formatting.
type Styles struct {
	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	Score          lipgloss.Style
	Critical       lipgloss.Style
	Warning        lipgloss.Style
	Recommendation lipgloss.Style
	Success        lipgloss.Style
	Subtle         lipgloss.Style
	Normal         lipgloss.Style
	Box            lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(SubtleColor),
		Score: lipgloss.NewStyle().
			Bold(true),
		Critical: lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor),
		Warning: lipgloss.NewStyle().
			Foreground(WarningColor),
		Recommendation: lipgloss.NewStyle().
			Foreground(PrimaryColor),
		Success: lipgloss.NewStyle().
			Foreground(SuccessColor),
		Subtle: lipgloss.NewStyle().
			Foreground(SubtleColor),
		Normal: lipgloss.NewStyle(),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1),
	}
}
