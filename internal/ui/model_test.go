package ui

import (
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"treeselect/internal/selector"
	"treeselect/internal/tree"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// regions:
//
//	t-0 Europe
//	  t-0-0 France
//	  t-0-1 Spain
//	t-1 Asia
//	  t-1-0 Japan
//	  t-1-1 Locked (disabled)
func regions() []any {
	return []any{
		map[string]any{"label": "Europe", "value": "eu", "children": []any{
			map[string]any{"label": "France", "value": "fr"},
			map[string]any{"label": "Spain", "value": "es"},
		}},
		map[string]any{"label": "Asia", "value": "as", "children": []any{
			map[string]any{"label": "Japan", "value": "jp"},
			map[string]any{"label": "Locked", "value": "lk", "disabled": true},
		}},
	}
}

func newModel(t *testing.T, cfg selector.Config) *Model {
	t.Helper()
	if cfg.ID == "" {
		cfg.ID = "t"
	}
	sel, err := selector.New(regions(), cfg)
	if err != nil {
		t.Fatalf("selector.New returned error: %v", err)
	}
	return New(sel, Options{Width: 60})
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

func expectQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestKeyboardSelectAndConfirm(t *testing.T) {
	m := newModel(t, selector.Config{Mode: tree.MultiSelect, ShowPartialState: true})

	if view := plainView(m); strings.Contains(view, "Europe") {
		t.Fatalf("expected closed picker to hide rows, got:\n%s", view)
	}

	send(m, keyMsg(tea.KeyDown))
	view := plainView(m)
	if !strings.Contains(view, "▶ [ ] Europe") || !strings.Contains(view, "▶ [ ] Asia") {
		t.Fatalf("expected collapsed roots after opening, got:\n%s", view)
	}

	send(m, keyMsg(tea.KeyRight))
	if view := plainView(m); !strings.Contains(view, "▼ [ ] Europe") || !strings.Contains(view, "[ ] France") {
		t.Fatalf("expected Europe expanded, got:\n%s", view)
	}

	send(m, keyMsg(tea.KeyEnter))
	view = plainView(m)
	if !strings.Contains(view, "[x] France") || !strings.Contains(view, "[x] Spain") {
		t.Fatalf("expected Europe subtree checked, got:\n%s", view)
	}
	if got := tree.TagIDs(m.Selected()); len(got) != 1 || got[0] != "t-0" {
		t.Fatalf("expected tags [t-0], got %v", got)
	}

	send(m, keyMsg(tea.KeyEsc))
	view = plainView(m)
	if strings.Contains(view, "France") {
		t.Fatalf("expected rows hidden after Esc, got:\n%s", view)
	}
	if !strings.Contains(view, "Europe") {
		t.Fatalf("expected Europe chip to stay visible, got:\n%s", view)
	}

	expectQuit(t, send(m, keyMsg(tea.KeyEnter)))
	if !m.Confirmed() || m.Cancelled() {
		t.Fatalf("expected confirmed picker, got confirmed=%t cancelled=%t", m.Confirmed(), m.Cancelled())
	}
}

func TestTypingFiltersTree(t *testing.T) {
	m := newModel(t, selector.Config{Mode: tree.MultiSelect})

	send(m, runeMsg('j'))
	view := plainView(m)
	if !strings.Contains(view, "Japan") || !strings.Contains(view, "Asia") {
		t.Fatalf("expected Japan with its ancestor, got:\n%s", view)
	}
	if strings.Contains(view, "France") {
		t.Fatalf("expected France filtered out, got:\n%s", view)
	}

	send(m, runeMsg('z'))
	if view := plainView(m); !strings.Contains(view, noMatchesText) {
		t.Fatalf("expected %q, got:\n%s", noMatchesText, view)
	}

	send(m, keyMsg(tea.KeyBackspace))
	if view := plainView(m); !strings.Contains(view, "Japan") || strings.Contains(view, noMatchesText) {
		t.Fatalf("expected Japan back after backspace, got:\n%s", view)
	}

	send(m, keyMsg(tea.KeyBackspace))
	if view := plainView(m); !strings.Contains(view, "Europe") {
		t.Fatalf("expected full tree after clearing query, got:\n%s", view)
	}
}

func TestBackspaceRemovesLastTag(t *testing.T) {
	m := newModel(t, selector.Config{Mode: tree.MultiSelect})
	if err := m.sel.SetChecked("t-0-0", true); err != nil {
		t.Fatalf("SetChecked returned error: %v", err)
	}
	if err := m.sel.SetChecked("t-1-0", true); err != nil {
		t.Fatalf("SetChecked returned error: %v", err)
	}

	send(m, keyMsg(tea.KeyBackspace))
	got := tree.TagIDs(m.Selected())
	if len(got) != 1 || got[0] != "t-0-0" {
		t.Fatalf("expected tags [t-0-0], got %v", got)
	}
}

func TestCopyValues(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	m := newModel(t, selector.Config{Mode: tree.MultiSelect})
	if cmd := send(m, keyMsg(tea.KeyCtrlY)); cmd != nil {
		t.Fatalf("expected no command with an empty selection")
	}

	_ = m.sel.SetChecked("t-0-0", true)
	_ = m.sel.SetChecked("t-1-0", true)
	if cmd := send(m, keyMsg(tea.KeyCtrlY)); cmd == nil {
		t.Fatalf("expected toast tick command")
	}
	if copied != "fr\njp" {
		t.Fatalf("expected copied values %q, got %q", "fr\njp", copied)
	}
	if view := plainView(m); !strings.Contains(view, "Copied 2 value(s)") {
		t.Fatalf("expected copy toast, got:\n%s", view)
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	send(m, keyMsg(tea.KeyCtrlY))
	if m.Err() == nil || !strings.Contains(plainView(m), "copy to clipboard") {
		t.Fatalf("expected clipboard error in footer, got %v", m.Err())
	}
}

func TestCopyToastExpires(t *testing.T) {
	m := newModel(t, selector.Config{Mode: tree.MultiSelect})
	m.copyToastVisible = true
	m.copyToastStart = m.copyToastStart.Add(-copyToastDuration)

	if cmd := send(m, copyToastTickMsg{}); cmd != nil {
		t.Fatalf("expected expired toast to stop ticking")
	}
	if m.copyToastVisible {
		t.Fatalf("expected toast hidden")
	}
}

func TestConfirmAndCancelKeys(t *testing.T) {
	m := newModel(t, selector.Config{Mode: tree.MultiSelect, ShowDropdown: selector.DropdownAlways})
	expectQuit(t, send(m, keyMsg(tea.KeyCtrlD)))
	if !m.Confirmed() {
		t.Fatalf("expected ctrl+d to confirm")
	}

	m = newModel(t, selector.Config{Mode: tree.MultiSelect})
	expectQuit(t, send(m, keyMsg(tea.KeyCtrlC)))
	if !m.Cancelled() || m.Confirmed() {
		t.Fatalf("expected ctrl+c to cancel")
	}
}

func TestEnterOnOpenPickerToggles(t *testing.T) {
	m := newModel(t, selector.Config{Mode: tree.RadioSelect, ShowDropdown: selector.DropdownAlways})

	send(m, keyMsg(tea.KeyDown), keyMsg(tea.KeyRight), keyMsg(tea.KeyDown))
	if cmd := send(m, keyMsg(tea.KeyEnter)); cmd != nil {
		t.Fatalf("expected Enter on an open picker not to quit")
	}
	if m.Confirmed() {
		t.Fatalf("expected picker to stay unconfirmed")
	}
	if view := plainView(m); !strings.Contains(view, "(•) France") {
		t.Fatalf("expected France radio checked, got:\n%s", view)
	}
}

func TestToggleKeyOpensAndClosesList(t *testing.T) {
	m := newModel(t, selector.Config{Mode: tree.MultiSelect})

	send(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if !m.sel.IsOpen() || !strings.Contains(plainView(m), "Europe") {
		t.Fatalf("expected ctrl+o to open the list, got:\n%s", plainView(m))
	}

	send(m, runeMsg('s'), runeMsg('p'))
	if m.sel.SearchText() != "sp" {
		t.Fatalf("expected search text sp, got %q", m.sel.SearchText())
	}
	send(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.sel.IsOpen() || m.input.Value() != "" || m.sel.Searching() {
		t.Fatalf("expected closing to clear the search, open=%t value=%q", m.sel.IsOpen(), m.input.Value())
	}
	if m.Confirmed() || m.Cancelled() {
		t.Fatalf("expected ctrl+o not to quit")
	}
}

func TestDisabledPickerIgnoresKeys(t *testing.T) {
	m := newModel(t, selector.Config{Mode: tree.MultiSelect, Disabled: true})
	send(m, keyMsg(tea.KeyDown), runeMsg('j'))
	if m.sel.IsOpen() || m.input.Value() != "" {
		t.Fatalf("expected disabled picker to ignore input, open=%t value=%q", m.sel.IsOpen(), m.input.Value())
	}
}

func TestScrollKeepsFocusVisible(t *testing.T) {
	items := make([]any, 30)
	for i := range items {
		items[i] = map[string]any{"label": "item " + string(rune('A'+i%26)), "value": i}
	}
	sel, err := selector.New(items, selector.Config{ID: "s", Mode: tree.SimpleSelect, ShowDropdown: selector.DropdownAlways})
	if err != nil {
		t.Fatalf("selector.New returned error: %v", err)
	}
	m := New(sel, Options{Rows: 5})

	send(m, keyMsg(tea.KeyEnd))
	lines := strings.Split(plainView(m), "\n")
	rows := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "   ") {
			rows++
		}
	}
	if rows != 5 {
		t.Fatalf("expected 5 rows drawn, got %d:\n%s", rows, strings.Join(lines, "\n"))
	}
	if m.offset != 25 {
		t.Fatalf("expected offset 25 after End, got %d", m.offset)
	}
}

func TestWindowSizeShrinksRows(t *testing.T) {
	m := newModel(t, selector.Config{Mode: tree.MultiSelect})
	send(m, tea.WindowSizeMsg{Width: 30, Height: 8})
	if m.width != 30 || m.rows != 4 {
		t.Fatalf("expected width 30 and 4 rows, got %d and %d", m.width, m.rows)
	}
}
