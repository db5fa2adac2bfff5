package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const noMatchesText = "No matches found"

// View implements tea.Model.
func (m *Model) View() string {
	var sections []string

	if tags := m.sel.Tags(); len(tags) > 0 {
		sections = append(sections, wrapChips(renderChips(tags), m.width))
	}
	sections = append(sections, m.input.View())

	if m.sel.IsOpen() {
		switch {
		case m.sel.AllNodesHidden():
			sections = append(sections, " "+styleHint().Render(noMatchesText))
		default:
			if rows := m.renderTree(); rows != "" {
				sections = append(sections, rows)
			}
		}
	}

	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m *Model) renderTree() string {
	order := m.sel.VisibleOrder()
	if len(order) == 0 {
		return ""
	}
	start := scrollOffset(order, m.sel.Focus(), m.offset, m.rows)
	end := start + m.rows
	if end > len(order) {
		end = len(order)
	}

	cfg := m.sel.Config()
	active := m.sel.Active()
	focus := m.sel.Focus()
	lines := make([]string, 0, end-start)
	for _, id := range order[start:end] {
		n, ok := active.Get(id)
		if !ok {
			continue
		}
		lines = append(lines, renderRow(n, cfg.Mode, cfg.ShowPartialState, id == focus, m.width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	switch {
	case m.err != nil:
		return m.wrap(styleError().Render(m.err.Error()))
	case m.copyToastVisible:
		return styleToast().Render(fmt.Sprintf("Copied %d value(s)", m.copyToastCount))
	}

	hints := make([]string, 0, len(m.keys.hints()))
	for _, b := range m.keys.hints() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return m.wrap(styleHint().Render(strings.Join(hints, " • ")))
}

func (m *Model) wrap(s string) string {
	if m.width <= 0 {
		return s
	}
	return wordwrap.String(s, m.width)
}
