package tree

// Node is one entry of the flat index. Records reference each other by id
// only; the Manager owns them and hands out copies.
type Node struct {
	ID       string
	ParentID string
	// ChildIDs is nil for leaves that never had children. A filtered view
	// whose children were all dropped keeps an empty, non-nil slice.
	ChildIDs []string
	Depth    int

	Label string
	Value string
	// Attrs carries every source field the engine does not interpret
	// (className, tagLabel, actions, dataset, ...).
	Attrs map[string]any

	Checked   bool
	Partial   bool
	Expanded  bool
	Disabled  bool
	Focused   bool
	IsDefault bool

	// Filtered view markers.
	Hide            bool
	MatchInChildren bool
	MatchInParent   bool
}

// IsLeaf reports whether the node never had children.
func (n Node) IsLeaf() bool {
	return n.ChildIDs == nil
}

// HasChildren reports whether the node has at least one child in its index.
func (n Node) HasChildren() bool {
	return len(n.ChildIDs) > 0
}

func (n *Node) clone() *Node {
	c := *n
	if n.ChildIDs != nil {
		c.ChildIDs = append(make([]string, 0, len(n.ChildIDs)), n.ChildIDs...)
	}
	return &c
}

// Tag is a selected node projected for the selection summary.
type Tag struct {
	ID       string
	Label    string
	Value    string
	Disabled bool
	Attrs    map[string]any
}

func tagOf(n *Node) Tag {
	return Tag{ID: n.ID, Label: n.Label, Value: n.Value, Disabled: n.Disabled, Attrs: n.Attrs}
}

// TagIDs returns the ids of tags in order.
func TagIDs(tags []Tag) []string {
	ids := make([]string, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	return ids
}

// Index is an insertion-ordered arena of nodes keyed by id. Insertion order
// is the pre-order walk order of the source tree.
type Index struct {
	order []string
	nodes map[string]*Node
}

func newIndex(capacity int) *Index {
	return &Index{
		order: make([]string, 0, capacity),
		nodes: make(map[string]*Node, capacity),
	}
}

// put stores n. A duplicate id replaces the earlier record but keeps its position.
func (ix *Index) put(n *Node) {
	if _, exists := ix.nodes[n.ID]; !exists {
		ix.order = append(ix.order, n.ID)
	}
	ix.nodes[n.ID] = n
}

func (ix *Index) node(id string) *Node {
	if ix == nil {
		return nil
	}
	return ix.nodes[id]
}

func (ix *Index) clone() *Index {
	c := newIndex(len(ix.order))
	for _, id := range ix.order {
		c.put(ix.nodes[id].clone())
	}
	return c
}

// Len returns the number of nodes in the index.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.order)
}

// Has reports whether id is present.
func (ix *Index) Has(id string) bool {
	return ix.node(id) != nil
}

// Get returns a copy of the node with the given id.
func (ix *Index) Get(id string) (Node, bool) {
	n := ix.node(id)
	if n == nil {
		return Node{}, false
	}
	return *n.clone(), true
}

// IDs returns node ids in insertion order.
func (ix *Index) IDs() []string {
	if ix == nil {
		return nil
	}
	return append([]string(nil), ix.order...)
}

// Nodes returns copies of every node in insertion order.
func (ix *Index) Nodes() []Node {
	if ix == nil {
		return nil
	}
	out := make([]Node, 0, len(ix.order))
	for _, id := range ix.order {
		out = append(out, *ix.nodes[id].clone())
	}
	return out
}

// VisibleOrder returns the pre-order ids a renderer would show: nodes that
// are not hidden and whose every ancestor is expanded.
func (ix *Index) VisibleOrder() []string {
	if ix == nil {
		return nil
	}
	visible := make(map[string]bool, len(ix.order))
	out := make([]string, 0, len(ix.order))
	for _, id := range ix.order {
		n := ix.nodes[id]
		if n.Hide {
			continue
		}
		if parent := ix.nodes[n.ParentID]; n.ParentID != "" && parent != nil {
			if !visible[parent.ID] || !parent.Expanded {
				continue
			}
		}
		visible[id] = true
		out = append(out, id)
	}
	return out
}

// VisibleCount returns the number of nodes not marked hidden.
func (ix *Index) VisibleCount() int {
	if ix == nil {
		return 0
	}
	count := 0
	for _, n := range ix.nodes {
		if !n.Hide {
			count++
		}
	}
	return count
}
