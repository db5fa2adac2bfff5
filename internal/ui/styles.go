package ui

import (
	"github.com/charmbracelet/lipgloss"

	"treeselect/internal/ui/theme"
)

// Styles are rebuilt from the current theme on every call so a theme switch
// takes effect on the next frame.

func styleRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func styleFocusedRow() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Background(t.Selection()).
		Foreground(t.Primary()).
		Bold(true)
}

func styleDisabledRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted()).Faint(true)
}

// styleContextRow marks ancestors of search matches.
func styleContextRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleCaret() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent())
}

func styleChecked() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Success()).Bold(true)
}

func stylePartial() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Warning())
}

func stylePrompt() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary()).Bold(true)
}

func styleHint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error()).Bold(true)
}

func styleToast() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Success()).
		Background(t.Background()).
		Bold(true)
}
