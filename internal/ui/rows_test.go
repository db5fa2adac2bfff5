package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"treeselect/internal/tree"
)

func TestRenderRowGlyphs(t *testing.T) {
	parent := []string{"c"}
	tests := []struct {
		name        string
		node        tree.Node
		mode        tree.Mode
		showPartial bool
		want        string
	}{
		{name: "multi leaf", node: tree.Node{Label: "Apple", Depth: 1}, mode: tree.MultiSelect, want: "     [ ] Apple"},
		{name: "multi checked parent", node: tree.Node{Label: "Fruit", ChildIDs: parent, Checked: true, Expanded: true}, mode: tree.MultiSelect, want: " ▼ [x] Fruit"},
		{name: "partial shown", node: tree.Node{Label: "Fruit", ChildIDs: parent, Partial: true}, mode: tree.MultiSelect, showPartial: true, want: " ▶ [-] Fruit"},
		{name: "partial hidden", node: tree.Node{Label: "Fruit", ChildIDs: parent, Partial: true}, mode: tree.Hierarchical, want: " ▶ [ ] Fruit"},
		{name: "radio checked", node: tree.Node{Label: "Apple", Depth: 1, Checked: true}, mode: tree.RadioSelect, want: "     (•) Apple"},
		{name: "radio unchecked", node: tree.Node{Label: "Pear"}, mode: tree.RadioSelect, want: "   ( ) Pear"},
		{name: "simple checked", node: tree.Node{Label: "Apple", Checked: true}, mode: tree.SimpleSelect, want: "   ✓ Apple"},
		{name: "simple unchecked", node: tree.Node{Label: "Pear"}, mode: tree.SimpleSelect, want: "     Pear"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ansi.Strip(renderRow(tc.node, tc.mode, tc.showPartial, false, 0))
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRenderRowTruncatesLabel(t *testing.T) {
	n := tree.Node{Label: "A very long label that will not fit"}
	row := ansi.Strip(renderRow(n, tree.MultiSelect, false, true, 12))
	if w := lipgloss.Width(row); w > 12 {
		t.Fatalf("expected row to fit 12 cells, got %d: %q", w, row)
	}
	if !strings.HasSuffix(row, ellipsis) {
		t.Fatalf("expected truncated label to end with %q, got %q", ellipsis, row)
	}

	short := ansi.Strip(renderRow(tree.Node{Label: "ok"}, tree.MultiSelect, false, false, 40))
	if !strings.HasSuffix(short, "ok") {
		t.Fatalf("expected short label untouched, got %q", short)
	}
}

func TestScrollOffset(t *testing.T) {
	order := make([]string, 20)
	for i := range order {
		order[i] = string(rune('a' + i))
	}
	tests := []struct {
		name   string
		order  []string
		focus  string
		offset int
		rows   int
		want   int
	}{
		{name: "fits", order: order[:4], focus: "d", offset: 3, rows: 5, want: 0},
		{name: "focus below window", order: order, focus: "h", offset: 0, rows: 5, want: 3},
		{name: "focus above window", order: order, focus: "c", offset: 6, rows: 5, want: 2},
		{name: "focus inside window", order: order, focus: "e", offset: 2, rows: 5, want: 2},
		{name: "no focus clamps", order: order, focus: "", offset: 18, rows: 5, want: 15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := scrollOffset(tc.order, tc.focus, tc.offset, tc.rows); got != tc.want {
				t.Fatalf("expected offset %d, got %d", tc.want, got)
			}
		})
	}
}

func TestWrapChips(t *testing.T) {
	chips := []string{"aaaa", "bbbb", "cccc"}
	if got := wrapChips(chips, 9); got != "aaaa bbbb\ncccc" {
		t.Fatalf("expected two lines, got %q", got)
	}
	if got := wrapChips(chips, 0); got != "aaaa bbbb cccc" {
		t.Fatalf("expected single line without width, got %q", got)
	}
	if got := wrapChips([]string{"toolongchip"}, 4); got != "toolongchip" {
		t.Fatalf("expected oversized chip on its own line, got %q", got)
	}
}

func TestTagLabelPrefersAttribute(t *testing.T) {
	tag := tree.Tag{Label: "United Kingdom", Attrs: map[string]any{"tagLabel": "UK"}}
	if got := tagLabel(tag); got != "UK" {
		t.Fatalf("expected tagLabel attribute, got %q", got)
	}
	if got := tagLabel(tree.Tag{Label: "France"}); got != "France" {
		t.Fatalf("expected label fallback, got %q", got)
	}

	chip := ansi.Strip(renderChip("UK", false))
	if chip != pillLeft+"UK"+pillRight {
		t.Fatalf("expected pill chip, got %q", chip)
	}
}
