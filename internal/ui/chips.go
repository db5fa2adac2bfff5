package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"treeselect/internal/tree"
	"treeselect/internal/ui/theme"
)

// Powerline characters for pill-shaped chips
const (
	pillLeft  = "\ue0b6"
	pillRight = "\ue0b4"
)

// tagLabel prefers a node's tagLabel attribute over its label.
func tagLabel(t tree.Tag) string {
	if s, ok := t.Attrs["tagLabel"].(string); ok && s != "" {
		return s
	}
	return t.Label
}

// renderChip renders a label as a pill with curved edges.
func renderChip(label string, disabled bool) string {
	t := theme.Current()
	bg := t.Chip()
	fg := t.Text()
	if disabled {
		fg = t.TextMuted()
	}

	leftCap := lipgloss.NewStyle().Foreground(bg).Render(pillLeft)
	text := lipgloss.NewStyle().Background(bg).Foreground(fg).Render(label)
	rightCap := lipgloss.NewStyle().Foreground(bg).Render(pillRight)
	return leftCap + text + rightCap
}

func renderChips(tags []tree.Tag) []string {
	chips := make([]string, 0, len(tags))
	for _, tag := range tags {
		chips = append(chips, renderChip(tagLabel(tag), tag.Disabled))
	}
	return chips
}

// wrapChips lays chips out left to right, starting a new line when the
// next chip would overflow width. Chips are never split.
func wrapChips(chips []string, width int) string {
	if width <= 0 {
		return strings.Join(chips, " ")
	}

	var lines []string
	var line []string
	lineWidth := 0
	for _, chip := range chips {
		w := lipgloss.Width(chip)
		needed := w
		if len(line) > 0 {
			needed++
		}
		if lineWidth+needed > width && len(line) > 0 {
			lines = append(lines, strings.Join(line, " "))
			line = []string{chip}
			lineWidth = w
			continue
		}
		line = append(line, chip)
		lineWidth += needed
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return strings.Join(lines, "\n")
}
