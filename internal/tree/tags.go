package tree

// refreshTags rebuilds the tag list from a pre-order scan of the canonical
// index. In multiSelect a checked node stands for its whole subtree, so its
// descendants are not listed. Other modes list every checked node.
func (m *Manager) refreshTags() {
	m.tags = m.tags[:0]
	collapse := m.opts.Mode == MultiSelect
	covered := make(map[string]bool)
	for _, id := range m.tree.order {
		n := m.tree.nodes[id]
		if collapse && covered[n.ParentID] {
			covered[id] = true
			continue
		}
		if !n.Checked {
			continue
		}
		covered[id] = true
		m.tags = append(m.tags, tagOf(n))
	}
}
