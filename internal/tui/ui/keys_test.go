package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", keys.Up},
		{"Down", keys.Down},
		{"Left", keys.Left},
		{"Right", keys.Right},
		{"NextTab", keys.NextTab},
		{"PrevTab", keys.PrevTab},
		{"Tab1", keys.Tab1},
		{"Tab2", keys.Tab2},
		{"Select", keys.Select},
		{"Back", keys.Back},
		{"Quit", keys.Quit},
		{"Help", keys.Help},
		{"Add", keys.Add},
		{"Delete", keys.Delete},
		{"Toggle", keys.Toggle},
		{"Calculate", keys.Calculate},
		{"Reset", keys.Reset},
		{"Theme", keys.Theme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.binding.Keys()) == 0 {
				t.Errorf("expected keys for binding %s", tt.name)
			}
			help := tt.binding.Help()
			if help.Key == "" {
				t.Errorf("expected help key for binding %s", tt.name)
			}
			if help.Desc == "" {
				t.Errorf("expected help description for binding %s", tt.name)
			}
		})
	}
}

func TestKeyBindingsMatch(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"Quit q", keys.Quit, "q"},
		{"Quit ctrl+c", keys.Quit, "ctrl+c"},
		{"Up k", keys.Up, "k"},
		{"Up arrow", keys.Up, "up"},
		{"Down j", keys.Down, "j"},
		{"Left h", keys.Left, "h"},
		{"Right l", keys.Right, "l"},
		{"Select enter", keys.Select, "enter"},
		{"Back esc", keys.Back, "esc"},
		{"Help ?", keys.Help, "?"},
		{"Tab1 1", keys.Tab1, "1"},
		{"Tab2 2", keys.Tab2, "2"},
		{"NextTab tab", keys.NextTab, "tab"},
		{"Add n", keys.Add, "n"},
		{"Delete d", keys.Delete, "d"},
		{"Toggle space", keys.Toggle, " "},
		{"Calculate c", keys.Calculate, "c"},
		{"Reset r", keys.Reset, "r"},
		{"Theme t", keys.Theme, "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, k := range tt.binding.Keys() {
				if k == tt.key {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected binding %s to include key %q, got keys %v", tt.name, tt.key, tt.binding.Keys())
			}
		})
	}
}

func TestSheetKeysDoNotCollide(t *testing.T) {
	keys := DefaultKeyMap()
	bindings := map[string]key.Binding{
		"Add":       keys.Add,
		"Delete":    keys.Delete,
		"Toggle":    keys.Toggle,
		"Calculate": keys.Calculate,
		"Reset":     keys.Reset,
		"Select":    keys.Select,
		"Quit":      keys.Quit,
		"Up":        keys.Up,
		"Down":      keys.Down,
		"Left":      keys.Left,
		"Right":     keys.Right,
	}

	seen := make(map[string]string)
	for name, b := range bindings {
		for _, k := range b.Keys() {
			if other, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, other, name)
			}
			seen[k] = name
		}
	}
}
