// Package selector is the event surface of a tree select: it owns the
// dropdown state, search text and focus, turns events into Manager calls
// and reports changes through callbacks.
package selector

import (
	"regexp"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treeselect/internal/debug"
	appErrors "treeselect/internal/errors"
	"treeselect/internal/keynav"
	"treeselect/internal/tree"
)

// Callbacks are invoked after the corresponding state change. Nil
// callbacks are skipped.
type Callbacks struct {
	OnChange     func(node tree.Node, tags []tree.Tag)
	OnNodeToggle func(node tree.Node)
	OnAction     func(node tree.Node, action string)
	OnFocus      func()
	OnBlur       func()
}

// Option configures New.
type Option func(*Selector)

// WithIDAllocator makes New draw the client id from a, unless Config.ID is set.
func WithIDAllocator(a *tree.IDAllocator) Option {
	return func(s *Selector) {
		s.ids = a
	}
}

// WithKeyMap replaces the default navigation keys.
func WithKeyMap(km keynav.KeyMap) Option {
	return func(s *Selector) {
		s.keys = km
	}
}

// WithCallbacks registers the outbound callbacks.
func WithCallbacks(cb Callbacks) Option {
	return func(s *Selector) {
		s.cb = cb
	}
}

// Selector is not safe for concurrent use.
type Selector struct {
	cfg  Config
	id   string
	ids  *tree.IDAllocator
	keys keynav.KeyMap
	cb   Callbacks

	mgr *tree.Manager

	open      bool
	search    string
	allHidden bool
	focus     string
}

// New flattens data and returns a Selector over it.
func New(data any, cfg Config, opts ...Option) (*Selector, error) {
	s := &Selector{cfg: cfg, keys: keynav.DefaultKeyMap()}
	for _, opt := range opts {
		opt(s)
	}

	s.id = cfg.ID
	if s.id == "" {
		if s.ids == nil {
			s.ids = tree.NewIDAllocator("")
		}
		s.id = s.ids.Next()
	}
	prefix := cfg.RootPrefix
	if prefix == "" {
		prefix = s.id
	}

	mgr, err := tree.NewManager(data, cfg.ManagerOptions(prefix))
	if err != nil {
		return nil, err
	}
	s.mgr = mgr
	s.open = cfg.ShowDropdown != DropdownDefault
	debug.Logf("selector %s: created (%s, %d nodes)", s.id, cfg.Mode, mgr.Canonical().Len())
	return s, nil
}

// ID returns the client id.
func (s *Selector) ID() string { return s.id }

// Mode returns the selection mode.
func (s *Selector) Mode() tree.Mode { return s.cfg.Mode }

// Config returns the settings the selector was created with.
func (s *Selector) Config() Config { return s.cfg }

// IsOpen reports whether the dropdown is shown.
func (s *Selector) IsOpen() bool { return s.open }

// SearchText returns the current query.
func (s *Selector) SearchText() string { return s.search }

// Searching reports whether the filtered view is shown.
func (s *Selector) Searching() bool { return s.mgr.ActiveView() == tree.ViewFiltered }

// AllNodesHidden reports whether the current query matched nothing.
func (s *Selector) AllNodesHidden() bool { return s.allHidden }

// Focus returns the focused node id, or "" when the search input has focus.
func (s *Selector) Focus() string { return s.focus }

// Tags returns the current selection.
func (s *Selector) Tags() []tree.Tag { return s.mgr.Tags() }

// Values returns the values of the current selection in tag order.
func (s *Selector) Values() []string {
	tags := s.mgr.Tags()
	values := make([]string, len(tags))
	for i, t := range tags {
		values[i] = t.Value
	}
	return values
}

// Active returns the index to render.
func (s *Selector) Active() *tree.Index { return s.mgr.Active() }

// VisibleOrder returns the ids to render, in order.
func (s *Selector) VisibleOrder() []string { return s.mgr.VisibleOrder() }

// Node returns a copy of the canonical node.
func (s *Selector) Node(id string) (tree.Node, bool) { return s.mgr.Node(id) }

// SetData replaces the tree. On error the current tree stays. Focus is kept
// if the focused id still exists.
func (s *Selector) SetData(data any) error {
	if err := s.mgr.Reset(data); err != nil {
		return err
	}
	s.search = ""
	s.allHidden = false
	if s.cfg.ShowDropdown != DropdownDefault {
		s.open = true
	}
	if _, ok := s.mgr.Node(s.focus); ok {
		_ = s.mgr.SetFocus(s.focus)
	} else {
		s.focus = ""
	}
	debug.Logf("selector %s: data replaced (%d nodes, focus=%q)", s.id, s.mgr.Canonical().Len(), s.focus)
	return nil
}

// Open shows the dropdown.
func (s *Selector) Open() {
	if s.open || s.cfg.Disabled {
		return
	}
	s.open = true
	if s.cb.OnFocus != nil {
		s.cb.OnFocus()
	}
}

// Close hides the dropdown and clears the search.
func (s *Selector) Close() {
	if !s.open || s.cfg.ShowDropdown == DropdownAlways {
		return
	}
	s.open = false
	s.RestoreFromSearch()
	if s.cb.OnBlur != nil {
		s.cb.OnBlur()
	}
}

// ToggleOpen opens a closed dropdown and closes an open one.
func (s *Selector) ToggleOpen() {
	if s.open {
		s.Close()
		return
	}
	s.Open()
}

// ToggleExpanded flips the expanded state of id.
func (s *Selector) ToggleExpanded(id string) error {
	if err := s.mgr.ToggleExpanded(id); err != nil {
		return err
	}
	node, ok := s.mgr.Node(id)
	if ok && s.cb.OnNodeToggle != nil {
		s.cb.OnNodeToggle(node)
	}
	return nil
}

// SetChecked checks or unchecks id. Read-only and disabled selectors and
// disabled nodes ignore the call.
func (s *Selector) SetChecked(id string, checked bool) error {
	node, ok := s.mgr.Node(id)
	if !ok {
		return s.unknown(id)
	}
	if s.cfg.ReadOnly || s.cfg.Disabled || node.Disabled {
		debug.Logf("selector %s: ignoring check of %s (read-only=%t disabled=%t)", s.id, id, s.cfg.ReadOnly, s.cfg.Disabled || node.Disabled)
		return nil
	}
	if err := s.mgr.SetChecked(id, checked); err != nil {
		return err
	}

	closing := s.cfg.Mode.Single() && !s.cfg.KeepOpenOnSelect && s.cfg.ShowDropdown != DropdownAlways
	if closing {
		s.open = false
	}
	if closing || s.cfg.ClearSearchOnChange {
		s.RestoreFromSearch()
	}
	s.setFocus(id)

	if s.cb.OnChange != nil {
		node, _ = s.mgr.Node(id)
		s.cb.OnChange(node, s.mgr.Tags())
	}
	return nil
}

// RemoveTag unchecks id. When the removal came from the keyboard it returns
// the tag id that should take focus, "" meaning the search input.
func (s *Selector) RemoveTag(id string, viaKeyboard bool) (string, error) {
	prev := s.mgr.Tags()
	if err := s.SetChecked(id, false); err != nil {
		return "", err
	}
	if !viaKeyboard {
		return "", nil
	}
	return keynav.NextFocusAfterTagRemove(id, prev, s.mgr.Tags()), nil
}

// Search filters the tree by text. An empty text ends the search.
func (s *Selector) Search(text string) {
	if text == "" {
		s.RestoreFromSearch()
		return
	}
	s.search = text
	res := s.mgr.Filter(text, s.cfg.KeepTreeOnSearch, s.cfg.KeepChildrenOnSearch)
	s.allHidden = res.AllNodesHidden
}

// RestoreFromSearch drops the filtered view.
func (s *Selector) RestoreFromSearch() {
	s.mgr.Restore()
	s.search = ""
	s.allHidden = false
}

// Action reports a custom node action to OnAction.
func (s *Selector) Action(id, action string) error {
	node, ok := s.mgr.Node(id)
	if !ok {
		return s.unknown(id)
	}
	if s.cb.OnAction != nil {
		s.cb.OnAction(node, action)
	}
	return nil
}

var wordKey = regexp.MustCompile(`^\w$`)

// KeyPress handles a key event. handled is false when the key should go to
// the search input instead.
func (s *Selector) KeyPress(msg tea.KeyMsg) (handled bool, err error) {
	if s.cfg.Disabled {
		return false, nil
	}
	switch {
	case !s.open && (s.keys.IsValidKey(msg, false) || wordKey.MatchString(msg.String())):
		s.Open()
		if !s.keys.IsValidKey(msg, false) {
			return false, nil
		}
		return s.navigate(msg)
	case s.open && s.keys.IsValidKey(msg, true):
		if msg.Type == tea.KeySpace && s.search != "" {
			return false, nil
		}
		return s.navigate(msg)
	case s.open && key.Matches(msg, s.keys.Close):
		if s.cfg.Mode == tree.SimpleSelect && s.mgr.Active().Has(s.focus) {
			return true, s.SetChecked(s.focus, true)
		}
		s.Close()
		return true, nil
	case key.Matches(msg, s.keys.Backspace) && s.search == "":
		tags := s.mgr.Tags()
		if len(tags) == 0 {
			return false, nil
		}
		return true, s.SetChecked(tags[len(tags)-1].ID, false)
	}
	return false, nil
}

func (s *Selector) navigate(msg tea.KeyMsg) (bool, error) {
	res := keynav.Resolve(keynav.Input{
		Focus:       s.focus,
		Order:       s.mgr.VisibleOrder(),
		Nodes:       s.mgr.Active(),
		Key:         msg,
		ReadOnly:    s.cfg.ReadOnly,
		AllowToggle: !s.Searching(),
		KeyMap:      &s.keys,
	})
	var err error
	switch res.Action {
	case keynav.ActionToggleExpanded:
		err = s.ToggleExpanded(res.Target)
	case keynav.ActionToggleChecked:
		err = s.SetChecked(res.Target, res.Checked)
	}
	if res.NextFocus != s.focus {
		s.setFocus(res.NextFocus)
	}
	return true, err
}

func (s *Selector) setFocus(id string) {
	if err := s.mgr.SetFocus(id); err != nil {
		debug.Logf("selector %s: focus %q: %v", s.id, id, err)
		return
	}
	s.focus = id
}

func (s *Selector) unknown(id string) error {
	if s.cfg.Lenient {
		debug.Logf("selector %s: ignoring unknown id %q", s.id, id)
		return nil
	}
	return appErrors.New(appErrors.CodeNodeNotFound, "node not found: "+id, nil)
}
