package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"treeselect/internal/tree"
)

const (
	caretExpanded  = "▼ "
	caretCollapsed = "▶ "
	caretLeaf      = "  "
	indentUnit     = "  "
	ellipsis       = "…"
)

// checkGlyph returns the selection marker for n, including its trailing space.
func checkGlyph(n tree.Node, mode tree.Mode, showPartial bool) string {
	switch mode {
	case tree.SimpleSelect:
		if n.Checked {
			return styleChecked().Render("✓") + " "
		}
		return "  "
	case tree.RadioSelect:
		if n.Checked {
			return styleChecked().Render("(•)") + " "
		}
		return "( ) "
	default:
		switch {
		case n.Checked:
			return styleChecked().Render("[x]") + " "
		case showPartial && n.Partial:
			return stylePartial().Render("[-]") + " "
		default:
			return "[ ] "
		}
	}
}

func caretGlyph(n tree.Node) string {
	switch {
	case !n.HasChildren():
		return caretLeaf
	case n.Expanded:
		return styleCaret().Render(caretExpanded)
	default:
		return styleCaret().Render(caretCollapsed)
	}
}

// renderRow draws one node. The label is cut to fit width when width > 0.
func renderRow(n tree.Node, mode tree.Mode, showPartial, focused bool, width int) string {
	prefix := " " + strings.Repeat(indentUnit, n.Depth) + caretGlyph(n) + checkGlyph(n, mode, showPartial)

	label := n.Label
	if width > 0 {
		avail := width - lipgloss.Width(prefix)
		if avail < 1 {
			avail = 1
		}
		label = ansi.Truncate(label, avail, ellipsis)
	}

	style := styleRow()
	switch {
	case focused:
		style = styleFocusedRow()
	case n.Disabled:
		style = styleDisabledRow()
	case n.MatchInChildren:
		style = styleContextRow()
	}
	return prefix + style.Render(label)
}

// scrollOffset returns the first row to draw so that focus stays inside a
// window of rows lines.
func scrollOffset(order []string, focus string, offset, rows int) int {
	if rows <= 0 || len(order) <= rows {
		return 0
	}
	idx := -1
	for i, id := range order {
		if id == focus {
			idx = i
			break
		}
	}
	if idx >= 0 {
		if idx < offset {
			offset = idx
		}
		if idx >= offset+rows {
			offset = idx - rows + 1
		}
	}
	if maxOffset := len(order) - rows; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
