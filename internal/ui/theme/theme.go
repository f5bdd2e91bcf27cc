// Package theme holds the lipgloss styles used by the command line output.
package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberrange/internal/content"
)

// Palette: terminal green on slate with a warning scale for threats.
var (
	Primary  = lipgloss.Color("#22D3EE") // Cyan
	Accent   = lipgloss.Color("#A3E635") // Lime
	Success  = lipgloss.Color("#22C55E") // Green
	Warning  = lipgloss.Color("#F59E0B") // Amber
	Danger   = lipgloss.Color("#F97316") // Orange
	Critical = lipgloss.Color("#EF4444") // Red
	Text     = lipgloss.Color("#E2E8F0")
	TextDim  = lipgloss.Color("#94A3B8")
	Border   = lipgloss.Color("#334155")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(12)

	Mono = lipgloss.NewStyle().
		Foreground(Accent)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1).
		Width(78)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		MarginTop(1)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Critical).
			Bold(true)

	Bullet = lipgloss.NewStyle().
		Foreground(Warning).
		SetString("•")
)

// Difficulty returns the badge style for d.
func Difficulty(d content.Difficulty) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch d {
	case content.DifficultyEasy:
		return s.Foreground(Success)
	case content.DifficultyMedium:
		return s.Foreground(Warning)
	case content.DifficultyHard:
		return s.Foreground(Critical)
	}
	return s.Foreground(TextDim)
}

// Threat returns the style for a feedback threat level.
func Threat(level string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch level {
	case "low":
		return s.Foreground(Success)
	case "medium":
		return s.Foreground(Warning)
	case "high":
		return s.Foreground(Danger)
	case "critical":
		return s.Foreground(Critical)
	}
	return s.Foreground(TextDim)
}

// Rank returns the style for a security rank.
func Rank(rank string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch rank {
	case "ELITE":
		return s.Foreground(Primary)
	case "TRAINED":
		return s.Foreground(Accent)
	}
	return s.Foreground(TextDim)
}
