package tree

import (
	"reflect"
	"testing"
)

func leaf(label string, fields ...any) map[string]any {
	n := map[string]any{"label": label, "value": label}
	for i := 0; i+1 < len(fields); i += 2 {
		n[fields[i].(string)] = fields[i+1]
	}
	return n
}

func branch(label string, children ...any) map[string]any {
	return map[string]any{"label": label, "value": label, "children": children}
}

// sampleForest is the two-root tree used throughout the package tests.
//
//	0 item1
//	  0-0 item1-1
//	    0-0-0 item1-1-1
//	    0-0-1 item1-1-2
//	  0-1 item1-2
//	1 item2
//	  1-0 item2-1
//	    1-0-0 item2-1-1
//	    1-0-1 item2-1-2
//	    1-0-2 item2-1-3
//	      1-0-2-0 item2-1-3-1
//	  1-1 item2-2
func sampleForest() []any {
	return []any{
		branch("item1",
			branch("item1-1", leaf("item1-1-1"), leaf("item1-1-2")),
			leaf("item1-2"),
		),
		branch("item2",
			branch("item2-1",
				leaf("item2-1-1"),
				leaf("item2-1-2"),
				branch("item2-1-3", leaf("item2-1-3-1")),
			),
			leaf("item2-2"),
		),
	}
}

func mustFlatten(t *testing.T, data any, opts FlattenOptions) *Result {
	t.Helper()
	res, err := Flatten(data, opts)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	return res
}

func mustManager(t *testing.T, data any, opts Options) *Manager {
	t.Helper()
	m, err := NewManager(data, opts)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	return m
}

func mustNode(t *testing.T, ix *Index, id string) Node {
	t.Helper()
	n, ok := ix.Get(id)
	if !ok {
		t.Fatalf("node %s not found in index %v", id, ix.IDs())
	}
	return n
}

func checkedIDs(ix *Index) []string {
	var ids []string
	for _, n := range ix.Nodes() {
		if n.Checked {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func expectIDs(t *testing.T, what string, got, want []string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s = %v, want %v", what, got, want)
	}
}
