// Package ui is the terminal front end of the tree select: a bubbletea
// model that feeds key events to a selector.Selector and draws its state.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"treeselect/internal/debug"
	"treeselect/internal/selector"
	"treeselect/internal/tree"
	"treeselect/internal/ui/theme"
)

// DefaultRows is the dropdown height used when Options.Rows is unset.
const DefaultRows = 12

// Options configures the picker.
type Options struct {
	Placeholder string
	// Rows caps the number of tree rows drawn at once.
	Rows int
	// Width is the initial width; WindowSizeMsg replaces it.
	Width int
	Keys  *KeyMap
}

var writeClipboard = clipboard.WriteAll

// Model is a bubbletea model around a Selector.
type Model struct {
	sel   *selector.Selector
	input textinput.Model
	keys  KeyMap

	width  int
	rows   int
	offset int

	confirmed bool
	cancelled bool
	err       error

	copyToastVisible bool
	copyToastStart   time.Time
	copyToastCount   int
}

// New returns a picker over sel.
func New(sel *selector.Selector, opts Options) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.PromptStyle = stylePrompt()
	input.Placeholder = opts.Placeholder
	if input.Placeholder == "" {
		input.Placeholder = "Search..."
	}
	if !sel.Config().Disabled {
		input.Focus()
	}

	m := &Model{
		sel:   sel,
		input: input,
		keys:  DefaultKeyMap(),
		width: opts.Width,
		rows:  opts.Rows,
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	}
	if m.rows <= 0 {
		m.rows = DefaultRows
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Selected returns the current selection.
func (m *Model) Selected() []tree.Tag { return m.sel.Tags() }

// Confirmed reports whether the user accepted the selection.
func (m *Model) Confirmed() bool { return m.confirmed }

// Cancelled reports whether the user aborted.
func (m *Model) Cancelled() bool { return m.cancelled }

// Err returns the last error raised by a key event.
func (m *Model) Err() error { return m.err }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Height > 0 {
			// chips, input and footer take roughly four lines
			if rows := msg.Height - 4; rows > 0 && rows < m.rows {
				m.rows = rows
			}
		}
		m.input.Width = m.width - len(m.input.Prompt) - 1
		return m, nil

	case copyToastTickMsg:
		if !m.copyToastVisible {
			return m, nil
		}
		if time.Since(m.copyToastStart) >= copyToastDuration {
			m.copyToastVisible = false
			return m, nil
		}
		return m, scheduleCopyToastTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit) && !m.sel.IsOpen():
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		return m.handleCopyKey()
	case key.Matches(msg, m.keys.Theme):
		name := theme.CycleTheme()
		m.input.PromptStyle = stylePrompt()
		debug.Logf("ui: theme %s", name)
		return m, nil
	}

	if m.sel.Config().Disabled {
		return m, nil
	}

	if key.Matches(msg, m.keys.Toggle) {
		m.sel.ToggleOpen()
		m.input.SetValue(m.sel.SearchText())
		m.offset = scrollOffset(m.sel.VisibleOrder(), m.sel.Focus(), m.offset, m.rows)
		return m, nil
	}

	handled, err := m.sel.KeyPress(msg)
	m.err = err
	var cmd tea.Cmd
	if handled {
		if m.input.Value() != m.sel.SearchText() {
			m.input.SetValue(m.sel.SearchText())
			m.input.CursorEnd()
		}
	} else {
		m.input, cmd = m.input.Update(msg)
		m.syncSearch()
	}
	m.offset = scrollOffset(m.sel.VisibleOrder(), m.sel.Focus(), m.offset, m.rows)
	return m, cmd
}

// syncSearch pushes the input text into the selector after the input
// consumed a key.
func (m *Model) syncSearch() {
	text := m.input.Value()
	if text == m.sel.SearchText() {
		return
	}
	if !m.sel.IsOpen() {
		m.sel.Open()
	}
	m.sel.Search(text)
}

// handleCopyKey copies the selected values to the clipboard, one per line.
func (m *Model) handleCopyKey() (tea.Model, tea.Cmd) {
	values := m.sel.Values()
	if len(values) == 0 {
		return m, nil
	}
	if err := writeClipboard(strings.Join(values, "\n")); err != nil {
		m.err = fmt.Errorf("copy to clipboard: %w", err)
		return m, nil
	}
	m.copyToastVisible = true
	m.copyToastStart = time.Now()
	m.copyToastCount = len(values)
	return m, scheduleCopyToastTick()
}
