package tree

import "fmt"

// sourceNode is a raw node after field normalization. checked and disabled
// stay nil when the source leaves them unset so they can be inherited.
type sourceNode struct {
	id          string
	label       string
	value       string
	children    []any
	hasChildren bool
	checked     *bool
	disabled    *bool
	expanded    bool
	isDefault   bool
	attrs       map[string]any
}

// Fields interpreted by the engine. Everything else lands in Attrs.
var consumedFields = map[string]bool{
	"id":        true,
	"label":     true,
	"value":     true,
	"children":  true,
	"checked":   true,
	"disabled":  true,
	"expanded":  true,
	"isDefault": true,
	// Alternate schema.
	"Id":           true,
	"Title":        true,
	"IsSelectable": true,
	"Children":     true,
	"IsDefault":    true,
}

func normalizeNode(raw any) (sourceNode, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return sourceNode{}, fmt.Errorf("node must be an object, got %T", raw)
	}

	var src sourceNode
	if id, ok := m["id"]; ok && id != nil {
		src.id = scalarString(id)
	}
	src.label = scalarString(m["label"])
	src.value = scalarString(m["value"])

	// Alternate schema fields win over their canonical counterparts.
	if id, ok := m["Id"]; ok {
		src.value = scalarString(id)
	}
	if title, ok := m["Title"]; ok {
		src.label = scalarString(title)
	}

	var err error
	if src.checked, err = optionalBool(m, "checked"); err != nil {
		return sourceNode{}, err
	}
	if src.disabled, err = optionalBool(m, "disabled"); err != nil {
		return sourceNode{}, err
	}
	selectable, err := optionalBool(m, "IsSelectable")
	if err != nil {
		return sourceNode{}, err
	}
	if selectable != nil {
		disabled := !*selectable
		src.disabled = &disabled
	}
	expanded, err := optionalBool(m, "expanded")
	if err != nil {
		return sourceNode{}, err
	}
	src.expanded = expanded != nil && *expanded

	for _, key := range []string{"isDefault", "IsDefault"} {
		marker, err := optionalBool(m, key)
		if err != nil {
			return sourceNode{}, err
		}
		if marker != nil && *marker {
			src.isDefault = true
		}
	}

	childrenRaw, hasChildren := m["children"]
	if alt, ok := m["Children"]; ok && alt != nil {
		childrenRaw, hasChildren = alt, true
	}
	if hasChildren && childrenRaw != nil {
		children, err := asSequence(childrenRaw)
		if err != nil {
			return sourceNode{}, fmt.Errorf("children: %w", err)
		}
		src.children = children
		src.hasChildren = true
	}

	for k, v := range m {
		if consumedFields[k] {
			continue
		}
		if src.attrs == nil {
			src.attrs = make(map[string]any)
		}
		src.attrs[k] = v
	}
	return src, nil
}

// asSequence accepts the sequence shapes JSON and YAML decoders produce.
func asSequence(raw any) ([]any, error) {
	switch v := raw.(type) {
	case []any:
		return v, nil
	case []map[string]any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list, got %T", raw)
	}
}

func optionalBool(m map[string]any, key string) (*bool, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return nil, fmt.Errorf("%s must be a boolean, got %T", key, raw)
	}
	return &b, nil
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
