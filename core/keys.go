package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps keys to a named action within one or more scopes.
// An empty Scopes list or "*" matches every scope.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		if b.has(pressed) {
			return true
		}
	}
	return false
}

// ActionFor returns the first action bound to the pressed key in scope, or "".
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) && b.has(pressed) {
			return b.Action
		}
	}
	return ""
}

// HintFor returns the first key bound to action in scope, for on-screen hints.
func (r *KeyRegistry) HintFor(action, scope string) string {
	for _, b := range r.bindings {
		if b.Action == action && scopeMatch(scope, b.Scopes) && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return ""
}

func (b KeyBinding) has(pressed string) bool {
	for _, k := range b.Keys {
		if normalizeKey(k) == pressed {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	return slices.Contains(scopes, "*") || slices.Contains(scopes, scope)
}
