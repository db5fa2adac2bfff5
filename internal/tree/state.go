package tree

// ComputePartial reports whether at least one direct child of id is checked
// or partial while not every child is checked. Children must already carry
// their final state.
func ComputePartial(ix *Index, id string) bool {
	n := ix.node(id)
	if n == nil {
		return false
	}
	return partialOf(ix, n)
}

func partialOf(ix *Index, n *Node) bool {
	if len(n.ChildIDs) == 0 {
		return false
	}
	active, checked := 0, 0
	for _, cid := range n.ChildIDs {
		c := ix.node(cid)
		if c == nil {
			continue
		}
		if c.Checked {
			checked++
		}
		if c.Checked || c.Partial {
			active++
		}
	}
	return active > 0 && checked < len(n.ChildIDs)
}

// ComputeAutoExpand reports whether id should be expanded so checked
// descendants are visible: the node is partial, or a direct child is
// checked, partial, or an expanded parent itself. Evaluated bottom-up, a
// checked leaf therefore expands its whole ancestor chain.
func ComputeAutoExpand(ix *Index, id string) bool {
	n := ix.node(id)
	if n == nil {
		return false
	}
	return autoExpandOf(ix, n)
}

func autoExpandOf(ix *Index, n *Node) bool {
	if partialOf(ix, n) {
		return true
	}
	for _, cid := range n.ChildIDs {
		c := ix.node(cid)
		if c != nil && (c.Checked || c.Partial || (c.Expanded && c.HasChildren())) {
			return true
		}
	}
	return false
}

func allChildrenChecked(ix *Index, n *Node) bool {
	if len(n.ChildIDs) == 0 {
		return false
	}
	for _, cid := range n.ChildIDs {
		if c := ix.node(cid); c == nil || !c.Checked {
			return false
		}
	}
	return true
}
