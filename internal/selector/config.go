package selector

import (
	"fmt"

	"treeselect/internal/config"
	appErrors "treeselect/internal/errors"
	"treeselect/internal/tree"
)

// ShowDropdown controls when the dropdown is open.
type ShowDropdown int

const (
	// DropdownDefault starts closed and opens on demand.
	DropdownDefault ShowDropdown = iota
	// DropdownInitial starts open.
	DropdownInitial
	// DropdownAlways is open and never closes.
	DropdownAlways
)

var dropdownNames = map[string]ShowDropdown{
	"default": DropdownDefault,
	"initial": DropdownInitial,
	"always":  DropdownAlways,
}

// ParseShowDropdown maps a configured name onto a ShowDropdown value.
func ParseShowDropdown(name string) (ShowDropdown, error) {
	if name == "" {
		return DropdownDefault, nil
	}
	if v, ok := dropdownNames[name]; ok {
		return v, nil
	}
	return DropdownDefault, appErrors.New(appErrors.CodeConfigurationError,
		fmt.Sprintf("unknown show-dropdown %q (want default, initial or always)", name), nil)
}

// Config holds per-selector settings.
type Config struct {
	// ID is the client id. Empty means one is taken from the IDAllocator.
	ID string
	// RootPrefix overrides the client id as the prefix of synthesized root ids.
	RootPrefix string

	Mode                 tree.Mode
	ShowPartialState     bool
	ExpandAllAncestors   bool
	DefaultCheckedValues []string

	KeepTreeOnSearch     bool
	KeepChildrenOnSearch bool
	KeepOpenOnSelect     bool
	ClearSearchOnChange  bool
	ShowDropdown         ShowDropdown

	ReadOnly bool
	Disabled bool
	// Lenient turns unknown ids into no-ops.
	Lenient bool

	FuzzySearch bool
	// Predicate overrides the built-in search predicates.
	Predicate tree.Predicate
}

// FromSettings builds a Config from the layered application configuration.
func FromSettings() (Config, error) {
	mode, err := tree.ParseMode(config.GetString(config.KeyMode))
	if err != nil {
		return Config{}, err
	}
	dropdown, err := ParseShowDropdown(config.GetString(config.KeyShowDropdown))
	if err != nil {
		return Config{}, err
	}
	return Config{
		RootPrefix:           config.GetString(config.KeyRootPrefix),
		Mode:                 mode,
		ShowPartialState:     config.GetBool(config.KeyShowPartial),
		ExpandAllAncestors:   config.GetBool(config.KeyExpandAncestors),
		DefaultCheckedValues: config.GetStringSlice(config.KeyDefaultChecked),
		KeepTreeOnSearch:     config.GetBool(config.KeyKeepTreeOnSearch),
		KeepChildrenOnSearch: config.GetBool(config.KeyKeepChildrenOnSearch),
		KeepOpenOnSelect:     config.GetBool(config.KeyKeepOpenOnSelect),
		ClearSearchOnChange:  config.GetBool(config.KeyClearSearchOnChange),
		ShowDropdown:         dropdown,
		ReadOnly:             config.GetBool(config.KeyReadOnly),
		Lenient:              !config.GetBool(config.KeyStrictIDs),
		FuzzySearch:          config.GetBool(config.KeySearchFuzzy),
	}, nil
}

// ManagerOptions returns the engine options for c with the given root prefix.
func (c Config) ManagerOptions(rootPrefix string) tree.Options {
	predicate := c.Predicate
	if predicate == nil {
		predicate = tree.PredicateFor(c.FuzzySearch)
	}
	return tree.Options{
		Mode:                 c.Mode,
		ShowPartialState:     c.ShowPartialState,
		ExpandAllAncestors:   c.ExpandAllAncestors,
		DefaultCheckedValues: c.DefaultCheckedValues,
		RootPrefix:           rootPrefix,
		Predicate:            predicate,
		Lenient:              c.Lenient,
	}
}
