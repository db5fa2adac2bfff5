package tree

import (
	"fmt"
	"slices"

	"treeselect/internal/debug"
)

// Result is the output of Flatten.
type Result struct {
	Index *Index
	// DefaultCheckedIDs lists nodes checked by a default marker or by
	// DefaultCheckedValues. They are re-checked when a selection is cleared.
	DefaultCheckedIDs []string
	// SingleSelectedID is the checked node in simple/radio mode, if any.
	SingleSelectedID string
}

type inherited struct {
	checked  *bool
	disabled *bool
}

type walker struct {
	opts          FlattenOptions
	defaultValues map[string]bool
	ix            *Index
	defaultIDs    []string
	markerDefault bool
	selected      *Node
}

// Flatten walks data (one node or a sequence of nodes) in pre-order and
// builds the flat index. On error nothing is returned.
func Flatten(data any, opts FlattenOptions) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	defer debug.Timed("tree: flatten")()

	forest, err := forestOf(data)
	if err != nil {
		return nil, invalidInputError(fmt.Sprintf("invalid tree: %v", err))
	}

	w := &walker{
		opts:          opts,
		defaultValues: make(map[string]bool, len(opts.DefaultCheckedValues)),
		ix:            newIndex(len(forest)),
	}
	for _, v := range opts.DefaultCheckedValues {
		w.defaultValues[v] = true
	}
	if err := w.walk(forest, nil, inherited{}, 0); err != nil {
		return nil, err
	}

	res := &Result{Index: w.ix, DefaultCheckedIDs: w.defaultIDs}
	if w.selected != nil {
		res.SingleSelectedID = w.selected.ID
	}
	debug.Logf("tree: flattened %d nodes (%d defaults, selected=%q)", w.ix.Len(), len(res.DefaultCheckedIDs), res.SingleSelectedID)
	return res, nil
}

func forestOf(data any) ([]any, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return []any{v}, nil
	default:
		return asSequence(data)
	}
}

func (w *walker) walk(nodes []any, parent *Node, state inherited, depth int) error {
	single := w.opts.single()
	for i, raw := range nodes {
		src, err := normalizeNode(raw)
		if err != nil {
			return invalidInputError(fmt.Sprintf("invalid node %s: %v", w.position(parent, i), err))
		}

		n := &Node{
			Depth:     depth,
			Label:     src.label,
			Value:     src.value,
			Attrs:     src.attrs,
			Expanded:  src.expanded,
			IsDefault: src.isDefault,
		}
		checked, disabled := src.checked, src.disabled

		valueDefault := w.defaultValues[n.Value]
		if valueDefault {
			checked = boolPtr(true)
		}

		switch {
		case src.id != "":
			n.ID = src.id
		case parent != nil:
			n.ID = childID(parent.ID, i)
		default:
			n.ID = rootID(w.opts.RootPrefix, i)
		}
		if parent != nil {
			n.ParentID = parent.ID
			parent.ChildIDs = append(parent.ChildIDs, n.ID)
		}

		if single && isTrue(checked) {
			if w.selected != nil {
				checked = boolPtr(false)
			} else {
				w.selected = n
			}
		}

		// A default marker displaces an earlier plain selection.
		if single && n.IsDefault && w.selected != nil && w.selected != n && !w.selected.IsDefault {
			w.selected.Checked = false
			w.defaultIDs = slices.DeleteFunc(w.defaultIDs, func(id string) bool { return id == w.selected.ID })
			w.selected = nil
		}

		if n.IsDefault && (!single || !w.markerDefault) {
			w.markerDefault = true
			w.addDefault(n.ID)
			checked = boolPtr(true)
			if single {
				w.selected = n
			}
		} else if valueDefault && isTrue(checked) {
			w.addDefault(n.ID)
		}

		if !w.opts.Hierarchical || w.opts.Radio {
			if disabled == nil && state.disabled != nil {
				disabled = state.disabled
			}
			if !w.opts.Radio && checked == nil && state.checked != nil {
				checked = state.checked
			}
		}
		n.Checked = isTrue(checked)
		n.Disabled = isTrue(disabled)

		w.ix.put(n)

		if w.opts.Simple || !src.hasChildren {
			continue
		}
		n.ChildIDs = []string{}
		if err := w.walk(src.children, n, inherited{checked: checked, disabled: disabled}, depth+1); err != nil {
			return err
		}
		w.settle(n)
	}
	return nil
}

// settle derives partial, promoted-checked and auto-expanded state once
// every child of n is final.
func (w *walker) settle(n *Node) {
	if w.opts.ShowPartialState && !n.Checked {
		n.Partial = partialOf(w.ix, n)
	}
	if !w.opts.single() && allChildrenChecked(w.ix, n) {
		n.Checked = true
		n.Partial = false
	}
	if w.opts.ExpandAllAncestors && !n.Checked {
		if autoExpandOf(w.ix, n) || allChildrenChecked(w.ix, n) {
			n.Expanded = true
		}
	}
}

func (w *walker) addDefault(id string) {
	if !slices.Contains(w.defaultIDs, id) {
		w.defaultIDs = append(w.defaultIDs, id)
	}
}

func (w *walker) position(parent *Node, i int) string {
	if parent == nil {
		return fmt.Sprintf("at root index %d", i)
	}
	return fmt.Sprintf("%d under %s", i, parent.ID)
}

func boolPtr(b bool) *bool {
	return &b
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
