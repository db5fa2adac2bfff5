package main

import (
	"github.com/spf13/cobra"

	"treeselect/internal/config"
	"treeselect/internal/loader"
	"treeselect/internal/selector"
	"treeselect/internal/tree"
)

// flatRecord is one node of the flatten output. ChildIDs is omitted for
// leaves and written as [] for a node with an empty children list.
type flatRecord struct {
	ID       string    `json:"id" yaml:"id"`
	ParentID string    `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	ChildIDs *[]string `json:"childIds,omitempty" yaml:"childIds,omitempty"`
	Depth    int       `json:"depth" yaml:"depth"`
	Label    string    `json:"label" yaml:"label"`
	Value    string    `json:"value" yaml:"value"`
	Checked  bool      `json:"checked,omitempty" yaml:"checked,omitempty"`
	Partial  bool      `json:"partial,omitempty" yaml:"partial,omitempty"`
	Expanded bool      `json:"expanded,omitempty" yaml:"expanded,omitempty"`
	Disabled bool      `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Default  bool      `json:"isDefault,omitempty" yaml:"isDefault,omitempty"`
}

func recordOf(n tree.Node) flatRecord {
	var children *[]string
	if !n.IsLeaf() {
		ids := n.ChildIDs
		children = &ids
	}
	return flatRecord{
		ID:       n.ID,
		ParentID: n.ParentID,
		ChildIDs: children,
		Depth:    n.Depth,
		Label:    n.Label,
		Value:    n.Value,
		Checked:  n.Checked,
		Partial:  n.Partial,
		Expanded: n.Expanded,
		Disabled: n.Disabled,
		Default:  n.IsDefault,
	}
}

// newManager loads path and builds an engine from the current settings.
// Root ids carry the configured root prefix only, so output ids stay
// stable across runs.
func newManager(path string) (*tree.Manager, selector.Config, error) {
	data, err := loader.Load(path)
	if err != nil {
		return nil, selector.Config{}, err
	}
	cfg, err := selector.FromSettings()
	if err != nil {
		return nil, selector.Config{}, err
	}
	mgr, err := tree.NewManager(data, cfg.ManagerOptions(cfg.RootPrefix))
	if err != nil {
		return nil, selector.Config{}, err
	}
	return mgr, cfg, nil
}

func flattenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten <file>",
		Short: "Print the flat node index of a tree",
		Long: `Flatten a JSON or YAML tree and print every node in pre-order with its
generated id, parent and child ids and derived state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := loader.ParseFormat(config.GetString(config.KeyOutputFormat))
			if err != nil {
				return err
			}
			mgr, _, err := newManager(args[0])
			if err != nil {
				return err
			}
			nodes := mgr.Canonical().Nodes()
			records := make([]flatRecord, 0, len(nodes))
			for _, n := range nodes {
				records = append(records, recordOf(n))
			}
			return loader.Encode(cmd.OutOrStdout(), records, format)
		},
	}
	cmd.Flags().String("format", "json", "output format (json or yaml)")
	return cmd
}
