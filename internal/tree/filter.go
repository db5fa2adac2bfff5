package tree

import (
	"treeselect/internal/debug"
)

// FilterResult is the outcome of a search.
type FilterResult struct {
	Index *Index
	// AllNodesHidden is true when nothing matched, so the caller can show an
	// empty-state message instead of an empty tree.
	AllNodesHidden bool
}

// Filter builds the filtered view for query and makes it active.
//
// Matches and their ancestors are always kept; ancestors are expanded and
// marked MatchInChildren. keepChildrenOnSearch also keeps the whole subtree
// of every match (MatchInParent) and expands it. keepTreeOnSearch keeps every other node
// too, marked Hide, so the structure stays stable while typing.
func (m *Manager) Filter(query string, keepTreeOnSearch, keepChildrenOnSearch bool) FilterResult {
	defer debug.Timed("tree: filter")()

	matches := make(map[string]bool)
	for _, id := range m.tree.order {
		n := m.tree.nodes[id]
		if m.opts.Predicate(*n, query) {
			matches[id] = true
		}
	}

	visible := make(map[string]bool, len(matches))
	ancestors := make(map[string]bool)
	descendants := make(map[string]bool)
	for _, id := range m.tree.order {
		if !matches[id] {
			continue
		}
		visible[id] = true
		for p := m.tree.node(m.tree.nodes[id].ParentID); p != nil && !ancestors[p.ID]; p = m.tree.node(p.ParentID) {
			ancestors[p.ID] = true
			visible[p.ID] = true
		}
		if keepChildrenOnSearch {
			m.markDescendants(id, descendants, visible)
		}
	}

	capacity := len(visible)
	if keepTreeOnSearch {
		capacity = m.tree.Len()
	}
	match := newIndex(capacity)
	for _, id := range m.tree.order {
		if !keepTreeOnSearch && !visible[id] {
			continue
		}
		c := m.tree.nodes[id].clone()
		c.Hide = !visible[id]
		c.MatchInChildren = ancestors[id]
		c.MatchInParent = descendants[id] && !matches[id]
		// kept subtrees are shown open
		if ancestors[id] || (keepChildrenOnSearch && (matches[id] || descendants[id]) && len(c.ChildIDs) > 0) {
			c.Expanded = true
		}
		if c.ChildIDs != nil && !keepTreeOnSearch {
			kept := make([]string, 0, len(c.ChildIDs))
			for _, cid := range c.ChildIDs {
				if visible[cid] {
					kept = append(kept, cid)
				}
			}
			c.ChildIDs = kept
		}
		match.put(c)
	}

	m.match = match
	m.view = ViewFiltered
	debug.Logf("tree: filter %q matched %d, kept %d of %d", query, len(matches), match.Len(), m.tree.Len())
	return FilterResult{Index: match, AllNodesHidden: len(matches) == 0}
}

func (m *Manager) markDescendants(id string, descendants, visible map[string]bool) {
	stack := append([]string(nil), m.tree.nodes[id].ChildIDs...)
	for len(stack) > 0 {
		cid := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if descendants[cid] {
			continue
		}
		descendants[cid] = true
		visible[cid] = true
		if c := m.tree.node(cid); c != nil {
			stack = append(stack, c.ChildIDs...)
		}
	}
}

// Restore drops the filtered view and returns the canonical index.
func (m *Manager) Restore() *Index {
	m.match = nil
	m.view = ViewCanonical
	return m.tree
}
