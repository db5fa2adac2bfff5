package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"treeselect/internal/config"
	"treeselect/internal/debug"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if exitErr, ok := err.(*exitError); ok {
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// exitError ends the process with code and no message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// flagKeys maps command line flags onto configuration keys. Only flags the
// user actually set become overrides, so config files and TS_* variables
// still apply otherwise.
var flagKeys = map[string]string{
	"mode":                    config.KeyMode,
	"show-partial":            config.KeyShowPartial,
	"expand-ancestors":        config.KeyExpandAncestors,
	"default-checked":         config.KeyDefaultChecked,
	"keep-tree-on-search":     config.KeyKeepTreeOnSearch,
	"keep-children-on-search": config.KeyKeepChildrenOnSearch,
	"keep-open-on-select":     config.KeyKeepOpenOnSelect,
	"clear-search-on-change":  config.KeyClearSearchOnChange,
	"read-only":               config.KeyReadOnly,
	"show-dropdown":           config.KeyShowDropdown,
	"strict-ids":              config.KeyStrictIDs,
	"root-prefix":             config.KeyRootPrefix,
	"fuzzy":                   config.KeySearchFuzzy,
	"format":                  config.KeyOutputFormat,
	"theme":                   config.KeyTheme,
	"debug":                   config.KeyDebug,
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "treeselect",
		Short:         "Pick, flatten and search hierarchical option trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Initialize(); err != nil {
				return fmt.Errorf("initializing config: %w", err)
			}
			if err := config.ApplyOverrides(flagOverrides(cmd.Flags())); err != nil {
				return err
			}
			if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
				return fmt.Errorf("initializing debug log: %w", err)
			}
			debug.Logf("treeselect %s: %s %v", Version, cmd.Name(), args)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.String("mode", config.DefaultMode, "selection mode (multiSelect, simpleSelect, radioSelect, hierarchical)")
	pf.Bool("show-partial", true, "mark parents with some checked descendants")
	pf.Bool("expand-ancestors", false, "expand every ancestor of a checked or partial node")
	pf.StringSlice("default-checked", nil, "values checked initially and restored when the selection is cleared")
	pf.Bool("keep-tree-on-search", false, "keep non-matching nodes (hidden) while searching")
	pf.Bool("keep-children-on-search", false, "keep the descendants of every match")
	pf.Bool("keep-open-on-select", false, "keep the dropdown open after a single-select choice")
	pf.Bool("clear-search-on-change", false, "clear the query after every selection change")
	pf.Bool("read-only", false, "show the tree without allowing changes")
	pf.String("show-dropdown", "default", "dropdown policy (default, initial, always)")
	pf.Bool("strict-ids", true, "fail on unknown node ids")
	pf.String("root-prefix", "", "prefix for generated root ids")
	pf.Bool("fuzzy", false, "match search queries fuzzily")
	pf.String("theme", "dracula", "colour theme for the picker")
	pf.Bool("debug", false, "write a debug log to ~/.treeselect/debug.log")

	root.AddCommand(pickCmd())
	root.AddCommand(flattenCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(versionCmd())
	return root
}

// flagOverrides collects the explicitly set flags as configuration values.
func flagOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := make(map[string]any)
	flags.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		overrides[key] = flagValue(f)
	})
	return overrides
}

func flagValue(f *pflag.Flag) any {
	switch f.Value.Type() {
	case "bool":
		if b, err := strconv.ParseBool(f.Value.String()); err == nil {
			return b
		}
	case "stringSlice":
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			return sv.GetSlice()
		}
	}
	return f.Value.String()
}
