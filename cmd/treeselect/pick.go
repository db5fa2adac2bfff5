package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"treeselect/internal/config"
	"treeselect/internal/loader"
	"treeselect/internal/selector"
	"treeselect/internal/ui"
	"treeselect/internal/ui/theme"
)

// exitCancelled is the status of a picker closed with ctrl+c.
const exitCancelled = 130

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(m *ui.Model, fromStdin bool) programRunner

// newProgram draws on stderr so stdout carries only the selected values.
var newProgram programFactory = func(m *ui.Model, fromStdin bool) programRunner {
	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	if fromStdin {
		opts = append(opts, tea.WithInputTTY())
	}
	return tea.NewProgram(m, opts...)
}

func pickCmd() *cobra.Command {
	var rows int
	var placeholder string

	cmd := &cobra.Command{
		Use:   "pick <file>",
		Short: "Choose nodes interactively and print their values",
		Long: `Open the tree in an interactive picker and print the selected values,
one per line, once the selection is confirmed.

Use "-" to read a JSON tree from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			cfg, err := selector.FromSettings()
			if err != nil {
				return err
			}
			sel, err := selector.New(data, cfg)
			if err != nil {
				return err
			}
			if name := config.GetString(config.KeyTheme); !theme.SetTheme(name) {
				return fmt.Errorf("unknown theme %q (available: %v)", name, theme.Available())
			}

			model := ui.New(sel, ui.Options{Rows: rows, Placeholder: placeholder})
			if err := runProgram(newProgram(model, args[0] == loader.Stdin)); err != nil {
				return err
			}
			if model.Cancelled() {
				return &exitError{code: exitCancelled}
			}
			for _, v := range sel.Values() {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", ui.DefaultRows, "maximum number of tree rows shown at once")
	cmd.Flags().StringVar(&placeholder, "placeholder", "", "search box placeholder")
	return cmd
}

func runProgram(prog programRunner) error {
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
