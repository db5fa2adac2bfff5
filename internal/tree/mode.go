package tree

import (
	"fmt"
	"strings"
)

// Mode selects how checked state behaves across the tree.
type Mode int

const (
	// MultiSelect checks subtrees and re-derives ancestors.
	MultiSelect Mode = iota
	// SimpleSelect is a flat single choice list.
	SimpleSelect
	// RadioSelect is a single choice across a nested tree.
	RadioSelect
	// Hierarchical lets every node be checked independently.
	Hierarchical
)

var modeNames = map[Mode]string{
	MultiSelect:  "multiSelect",
	SimpleSelect: "simpleSelect",
	RadioSelect:  "radioSelect",
	Hierarchical: "hierarchical",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Single reports whether at most one node may be checked.
func (m Mode) Single() bool {
	return m == SimpleSelect || m == RadioSelect
}

// ParseMode maps a configured mode name onto a Mode.
func ParseMode(name string) (Mode, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return MultiSelect, nil
	}
	for mode, n := range modeNames {
		if n == name {
			return mode, nil
		}
	}
	return MultiSelect, configurationError(fmt.Sprintf("unknown mode %q (want multiSelect, simpleSelect, radioSelect or hierarchical)", name))
}

// FlattenOptions control a single Flatten pass.
type FlattenOptions struct {
	Simple       bool
	Radio        bool
	Hierarchical bool

	ShowPartialState     bool
	ExpandAllAncestors   bool
	DefaultCheckedValues []string
	RootPrefix           string
}

func (o FlattenOptions) single() bool {
	return o.Simple || o.Radio
}

func (o FlattenOptions) validate() error {
	set := 0
	for _, flag := range []bool{o.Simple, o.Radio, o.Hierarchical} {
		if flag {
			set++
		}
	}
	if set > 1 {
		return configurationError("at most one of simple, radio and hierarchical may be set")
	}
	return nil
}

// FlattenOptions returns the flatten flags for the mode.
func (m Mode) FlattenOptions() FlattenOptions {
	return FlattenOptions{
		Simple:       m == SimpleSelect,
		Radio:        m == RadioSelect,
		Hierarchical: m == Hierarchical,
	}
}
