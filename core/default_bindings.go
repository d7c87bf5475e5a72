package core

import "strings"

var screenScopes = []string{"screen:command", "screen:drawer", "screen:history", "screen:event", "screen:image", "screen:performer"}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "konec", Scopes: []string{"page"}},
		{Keys: []string{"up", "k"}, Action: "scroll-up", Description: "nahoru", Scopes: []string{"page"}},
		{Keys: []string{"down", "j"}, Action: "scroll-down", Description: "dolů", Scopes: []string{"page"}},
		{Keys: []string{"pgup"}, Action: "page-up", Description: "strana nahoru", Scopes: []string{"page"}},
		{Keys: []string{"pgdown"}, Action: "page-down", Description: "strana dolů", Scopes: []string{"page"}},
		{Keys: []string{"home"}, Action: "top", Description: "začátek", Scopes: []string{"page"}},
		{Keys: []string{"end"}, Action: "bottom", Description: "konec stránky", Scopes: []string{"page"}},
		{Keys: []string{"tab"}, Action: "focus-next", Description: "další prvek", Scopes: []string{"page"}},
		{Keys: []string{"shift+tab"}, Action: "focus-prev", Description: "předchozí prvek", Scopes: []string{"page"}},
		{Keys: []string{"enter"}, Action: "activate", Description: "otevřít", Scopes: []string{"page"}},
		{Keys: []string{"left"}, Action: "show-prev", Description: "předchozí vystoupení", Scopes: []string{"page"}},
		{Keys: []string{"right"}, Action: "show-next", Description: "další vystoupení", Scopes: []string{"page"}},
		{Keys: []string{"1"}, Action: "navigate-1", Description: "úvod", Scopes: []string{"page"}},
		{Keys: []string{"2"}, Action: "navigate-2", Description: "o nás", Scopes: []string{"page"}},
		{Keys: []string{"3"}, Action: "navigate-3", Description: "vystoupení", Scopes: []string{"page"}},
		{Keys: []string{"4"}, Action: "navigate-4", Description: "účinkující", Scopes: []string{"page"}},
		{Keys: []string{"5"}, Action: "navigate-5", Description: "galerie", Scopes: []string{"page"}},
		{Keys: []string{"6"}, Action: "navigate-6", Description: "kontakt", Scopes: []string{"page"}},
		{Keys: []string{"m"}, Action: "toggle-menu", Description: "menu", Scopes: []string{"page"}},
		{Keys: []string{"h"}, Action: "open-history", Description: "odeslané zprávy", Scopes: []string{"page"}},
		{Keys: []string{"ctrl+s"}, Action: "submit", Description: "odeslat", Scopes: []string{"page"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "příkazy", Scopes: []string{"page"}},
		{Keys: []string{"esc"}, Action: "close", Description: "zavřít", Scopes: screenScopes},
		{Keys: []string{"enter"}, Action: "select", Description: "vybrat", Scopes: []string{"screen:command", "screen:drawer"}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has an override.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
