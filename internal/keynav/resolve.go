// Package keynav maps key presses onto focus moves and tree actions. It only
// reads the index it is given; callers apply the returned action.
package keynav

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treeselect/internal/tree"
)

// PageSize is how far PageUp and PageDown move the focus.
const PageSize = 10

// Action is what a key asks the caller to do besides moving focus.
type Action int

const (
	ActionNone Action = iota
	ActionToggleExpanded
	ActionToggleChecked
)

func (a Action) String() string {
	switch a {
	case ActionToggleExpanded:
		return "toggle-expanded"
	case ActionToggleChecked:
		return "toggle-checked"
	default:
		return "none"
	}
}

// Input is everything Resolve looks at.
type Input struct {
	Focus string
	// Order is the visible pre-order of the active view.
	Order []string
	Nodes *tree.Index
	Key   tea.KeyMsg

	ReadOnly    bool
	AllowToggle bool
	// KeyMap overrides DefaultKeyMap when non-nil.
	KeyMap *KeyMap
}

// Result is the outcome of one key press.
type Result struct {
	NextFocus string
	Action    Action
	// Target is the node the action applies to.
	Target string
	// Checked is the requested state for ActionToggleChecked.
	Checked bool
}

// Resolve decides the next focus and action for in.Key.
func Resolve(in Input) Result {
	km := DefaultKeyMap()
	if in.KeyMap != nil {
		km = *in.KeyMap
	}
	stay := Result{NextFocus: in.Focus}
	idx := slices.Index(in.Order, in.Focus)
	last := len(in.Order) - 1

	switch {
	case key.Matches(in.Key, km.Down):
		if idx < 0 {
			return moveTo(in.Order, 0)
		}
		return moveTo(in.Order, min(idx+1, last))
	case key.Matches(in.Key, km.Up):
		if idx < 0 {
			return moveTo(in.Order, last)
		}
		return moveTo(in.Order, max(idx-1, 0))
	case key.Matches(in.Key, km.Home):
		return moveTo(in.Order, 0)
	case key.Matches(in.Key, km.End):
		return moveTo(in.Order, last)
	case key.Matches(in.Key, km.PageDown):
		if idx < 0 {
			return moveTo(in.Order, 0)
		}
		return moveTo(in.Order, min(idx+PageSize, last))
	case key.Matches(in.Key, km.PageUp):
		if idx < 0 {
			return moveTo(in.Order, last)
		}
		return moveTo(in.Order, max(idx-PageSize, 0))
	}

	if idx < 0 {
		return stay
	}
	node, ok := in.Nodes.Get(in.Focus)
	if !ok {
		return stay
	}

	switch {
	case key.Matches(in.Key, km.Right):
		if !node.HasChildren() {
			return stay
		}
		if !node.Expanded {
			if in.AllowToggle {
				return Result{NextFocus: in.Focus, Action: ActionToggleExpanded, Target: in.Focus}
			}
			return stay
		}
		if idx < last {
			if next, ok := in.Nodes.Get(in.Order[idx+1]); ok && next.ParentID == node.ID {
				return Result{NextFocus: next.ID}
			}
		}
		return stay
	case key.Matches(in.Key, km.Left):
		if node.HasChildren() && node.Expanded && in.AllowToggle {
			return Result{NextFocus: in.Focus, Action: ActionToggleExpanded, Target: in.Focus}
		}
		if node.ParentID != "" && slices.Contains(in.Order, node.ParentID) {
			return Result{NextFocus: node.ParentID}
		}
		return stay
	case key.Matches(in.Key, km.Toggle):
		if in.ReadOnly || node.Disabled {
			return stay
		}
		return Result{NextFocus: in.Focus, Action: ActionToggleChecked, Target: in.Focus, Checked: !node.Checked}
	}
	return stay
}

func moveTo(order []string, i int) Result {
	if len(order) == 0 {
		return Result{}
	}
	return Result{NextFocus: order[i]}
}

// NextFocusAfterTagRemove picks the tag to focus after removed was dropped
// from prevTags: the one before it if it survived, else the one after it.
// An empty result means focus goes back to the search input.
func NextFocusAfterTagRemove(removed string, prevTags, tags []tree.Tag) string {
	i := slices.IndexFunc(prevTags, func(t tree.Tag) bool { return t.ID == removed })
	if i < 0 {
		return ""
	}
	survived := func(j int) bool {
		if j < 0 || j >= len(prevTags) || prevTags[j].ID == removed {
			return false
		}
		return slices.ContainsFunc(tags, func(t tree.Tag) bool { return t.ID == prevTags[j].ID })
	}
	switch {
	case survived(i - 1):
		return prevTags[i-1].ID
	case survived(i + 1):
		return prevTags[i+1].ID
	default:
		return ""
	}
}
