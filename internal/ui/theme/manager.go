package theme

import (
	"sort"
	"sync"
)

// DefaultName is the theme active before any SetTheme call.
const DefaultName = "dracula"

var registry = &manager{
	themes: make(map[string]Theme),
}

type manager struct {
	mu          sync.RWMutex
	themes      map[string]Theme
	currentName string
}

// RegisterTheme adds or replaces a named theme.
func RegisterTheme(name string, t Theme) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.themes[name] = t
	if registry.currentName == "" {
		registry.currentName = name
	}
}

// SetTheme switches to a registered theme by name. An empty name selects
// DefaultName. Returns false if the theme is unknown.
func SetTheme(name string) bool {
	if name == "" {
		name = DefaultName
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.themes[name]; !ok {
		return false
	}
	registry.currentName = name
	return true
}

// Current returns the active theme.
func Current() Theme {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.themes[registry.currentName]
}

// CurrentName returns the name of the active theme.
func CurrentName() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.currentName
}

// Available returns the registered theme names in sorted order.
func Available() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.sortedNames()
}

// CycleTheme switches to the next theme in sorted order and returns its name.
func CycleTheme() string {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	names := registry.sortedNames()
	if len(names) == 0 {
		return ""
	}
	next := 0
	for i, name := range names {
		if name == registry.currentName {
			next = (i + 1) % len(names)
			break
		}
	}
	registry.currentName = names[next]
	return registry.currentName
}

func (m *manager) sortedNames() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
