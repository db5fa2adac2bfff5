package tree

import "testing"

func TestComputePartial(t *testing.T) {
	tests := []struct {
		name     string
		children []any
		want     bool
	}{
		{name: "some checked", children: []any{leaf("a", "checked", true), leaf("b"), leaf("c", "checked", true)}, want: true},
		{name: "none checked", children: []any{leaf("a"), leaf("b")}, want: false},
		{name: "all checked", children: []any{leaf("a", "checked", true), leaf("b", "checked", true)}, want: false},
		{name: "partial child", children: []any{branch("a", leaf("x", "checked", true), leaf("y")), leaf("b")}, want: true},
		{name: "no children", children: []any{}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := []any{branch("p", tc.children...)}
			res := mustFlatten(t, data, FlattenOptions{Hierarchical: true, ShowPartialState: true})
			if got := ComputePartial(res.Index, "0"); got != tc.want {
				t.Fatalf("expected partial=%t, got %t", tc.want, got)
			}
		})
	}
}

func TestComputePartialUnknownID(t *testing.T) {
	res := mustFlatten(t, sampleForest(), FlattenOptions{})
	if ComputePartial(res.Index, "missing") {
		t.Fatalf("expected unknown id to report false")
	}
	if ComputeAutoExpand(res.Index, "missing") {
		t.Fatalf("expected unknown id to report false")
	}
}

func TestFlattenPartialScenario(t *testing.T) {
	data := []any{branch("p", leaf("a", "checked", true), leaf("b", "checked", false), leaf("c", "checked", true))}
	res := mustFlatten(t, data, FlattenOptions{ShowPartialState: true})

	parent := mustNode(t, res.Index, "0")
	if !parent.Partial || parent.Checked {
		t.Fatalf("expected parent partial and unchecked, got partial=%t checked=%t", parent.Partial, parent.Checked)
	}
}

func TestComputeAutoExpand(t *testing.T) {
	data := []any{
		branch("a",
			branch("b", leaf("c", "checked", true), leaf("d")),
			leaf("e"),
		),
		branch("f", branch("g", leaf("h")), leaf("i")),
	}
	res := mustFlatten(t, data, FlattenOptions{Hierarchical: true})

	if !ComputeAutoExpand(res.Index, "0-0") {
		t.Fatalf("expected parent of a checked leaf to auto-expand")
	}
	if ComputeAutoExpand(res.Index, "0") {
		t.Fatalf("expected grandparent to wait until its child is expanded")
	}
	if ComputeAutoExpand(res.Index, "1") {
		t.Fatalf("expected branch without selection to stay collapsed")
	}
}
