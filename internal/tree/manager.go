package tree

import (
	"treeselect/internal/debug"
)

// View identifies which index the Manager currently exposes.
type View int

const (
	// ViewCanonical is the full tree and the source of truth for selection.
	ViewCanonical View = iota
	// ViewFiltered is the transient result of the last Filter call.
	ViewFiltered
)

func (v View) String() string {
	if v == ViewFiltered {
		return "filtered"
	}
	return "canonical"
}

// Options configure a Manager.
type Options struct {
	Mode                 Mode
	ShowPartialState     bool
	ExpandAllAncestors   bool
	DefaultCheckedValues []string
	RootPrefix           string
	// Predicate overrides the search predicate. Nil means SubstringPredicate.
	Predicate Predicate
	// Lenient turns operations on unknown ids into no-ops instead of
	// CodeNodeNotFound errors.
	Lenient bool
}

func (o Options) flattenOptions() FlattenOptions {
	fo := o.Mode.FlattenOptions()
	fo.ShowPartialState = o.ShowPartialState
	fo.ExpandAllAncestors = o.ExpandAllAncestors
	fo.DefaultCheckedValues = o.DefaultCheckedValues
	fo.RootPrefix = o.RootPrefix
	return fo
}

// Manager owns the canonical index, the optional filtered index and the
// derived tag list. It is not safe for concurrent use.
type Manager struct {
	opts Options

	tree  *Index
	match *Index
	view  View

	defaultIDs []string
	selected   string
	focused    string
	tags       []Tag
}

// NewManager flattens data and returns a Manager holding the result.
func NewManager(data any, opts Options) (*Manager, error) {
	if _, ok := modeNames[opts.Mode]; !ok {
		return nil, configurationError("unknown mode " + opts.Mode.String())
	}
	if opts.Predicate == nil {
		opts.Predicate = SubstringPredicate
	}
	m := &Manager{opts: opts}
	if err := m.Reset(data); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset re-flattens data and replaces all state. On error the previous
// state is left untouched.
func (m *Manager) Reset(data any) error {
	res, err := Flatten(data, m.opts.flattenOptions())
	if err != nil {
		return err
	}
	m.tree = res.Index
	m.match = nil
	m.view = ViewCanonical
	m.defaultIDs = res.DefaultCheckedIDs
	m.selected = res.SingleSelectedID
	m.focused = ""
	m.refreshTags()
	return nil
}

// Mode returns the selection mode.
func (m *Manager) Mode() Mode {
	return m.opts.Mode
}

// Canonical returns the full index.
func (m *Manager) Canonical() *Index {
	return m.tree
}

// Filtered returns the filtered index, or nil outside of search.
func (m *Manager) Filtered() *Index {
	return m.match
}

// ActiveView reports which index is currently shown.
func (m *Manager) ActiveView() View {
	return m.view
}

// Active returns the index for the active view.
func (m *Manager) Active() *Index {
	if m.view == ViewFiltered && m.match != nil {
		return m.match
	}
	return m.tree
}

// VisibleOrder returns the visible pre-order ids of the active view.
func (m *Manager) VisibleOrder() []string {
	return m.Active().VisibleOrder()
}

// Node returns a copy of the canonical node with the given id.
func (m *Manager) Node(id string) (Node, bool) {
	return m.tree.Get(id)
}

// Tags returns the current selection summary.
func (m *Manager) Tags() []Tag {
	return append([]Tag(nil), m.tags...)
}

// DefaultCheckedIDs returns the ids restored when the selection empties.
func (m *Manager) DefaultCheckedIDs() []string {
	return append([]string(nil), m.defaultIDs...)
}

// SingleSelectedID returns the current selection in simple/radio mode.
func (m *Manager) SingleSelectedID() string {
	return m.selected
}

// lookup resolves id in the canonical index. A nil node with a nil error
// means the id is unknown and the Manager is lenient.
func (m *Manager) lookup(id string) (*Node, error) {
	if n := m.tree.node(id); n != nil {
		return n, nil
	}
	if m.opts.Lenient {
		debug.Logf("tree: ignoring unknown id %q", id)
		return nil, nil
	}
	return nil, nodeNotFoundError(id)
}

// ToggleExpanded flips the expanded flag of id in the canonical and, if
// present, the filtered view.
func (m *Manager) ToggleExpanded(id string) error {
	n, err := m.lookup(id)
	if n == nil {
		return err
	}
	n.Expanded = !n.Expanded
	if fn := m.match.node(id); fn != nil {
		fn.Expanded = !fn.Expanded
	}
	debug.Logf("tree: toggled %s expanded=%t", id, n.Expanded)
	return nil
}

// SetChecked sets the checked state of id and propagates it according to
// the mode. If the selection ends up empty, the default ids are re-checked.
func (m *Manager) SetChecked(id string, checked bool) error {
	n, err := m.lookup(id)
	if n == nil {
		return err
	}
	m.applyChecked(n, checked)
	m.refreshTags()
	if len(m.tags) == 0 && len(m.defaultIDs) > 0 {
		m.restoreDefaults()
		m.refreshTags()
	}
	m.syncFiltered()
	debug.Logf("tree: set %s checked=%t (%d tags)", id, checked, len(m.tags))
	return nil
}

// SetFocus moves the transient focus marker to id. An empty id clears it.
func (m *Manager) SetFocus(id string) error {
	var next *Node
	if id != "" {
		n, err := m.lookup(id)
		if n == nil {
			return err
		}
		next = n
	}
	for _, ix := range []*Index{m.tree, m.match} {
		if prev := ix.node(m.focused); prev != nil {
			prev.Focused = false
		}
	}
	m.focused = ""
	if next == nil {
		return nil
	}
	next.Focused = true
	if fn := m.match.node(id); fn != nil {
		fn.Focused = true
	}
	m.focused = id
	return nil
}

// Focused returns the id carrying the focus marker.
func (m *Manager) Focused() string {
	return m.focused
}

func (m *Manager) applyChecked(n *Node, checked bool) {
	switch {
	case m.opts.Mode.Single():
		if checked {
			if m.selected != n.ID {
				if prev := m.tree.node(m.selected); prev != nil {
					prev.Checked = false
				}
			}
			n.Checked = true
			m.selected = n.ID
		} else {
			n.Checked = false
			if m.selected == n.ID {
				m.selected = ""
			}
		}
		n.Partial = false
	case m.opts.Mode == Hierarchical:
		n.Checked = checked
		n.Partial = !checked && m.opts.ShowPartialState && partialOf(m.tree, n)
		m.refreshAncestors(n, false)
	default:
		m.setSubtree(n, checked)
		m.refreshAncestors(n, true)
	}
}

func (m *Manager) setSubtree(root *Node, checked bool) {
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n.Checked = checked
		n.Partial = false
		for _, cid := range n.ChildIDs {
			if c := m.tree.node(cid); c != nil {
				stack = append(stack, c)
			}
		}
	}
}

// refreshAncestors walks from n's parent to the root. With rederive, a
// parent is checked exactly when all of its children are.
func (m *Manager) refreshAncestors(n *Node, rederive bool) {
	for p := m.tree.node(n.ParentID); p != nil; p = m.tree.node(p.ParentID) {
		if rederive {
			p.Checked = allChildrenChecked(m.tree, p)
		}
		p.Partial = m.opts.ShowPartialState && !p.Checked && partialOf(m.tree, p)
	}
}

func (m *Manager) restoreDefaults() {
	debug.Logf("tree: selection empty, restoring %d defaults", len(m.defaultIDs))
	for _, id := range m.defaultIDs {
		if n := m.tree.node(id); n != nil {
			m.applyChecked(n, true)
		}
	}
}

// syncFiltered copies selection state from the canonical records onto the
// filtered copies.
func (m *Manager) syncFiltered() {
	if m.match == nil {
		return
	}
	for id, fn := range m.match.nodes {
		if n := m.tree.node(id); n != nil {
			fn.Checked = n.Checked
			fn.Partial = n.Partial
			fn.Disabled = n.Disabled
		}
	}
}
