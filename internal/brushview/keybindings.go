package brushview

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding defines a key binding for a particular target type.
//
// If Handler is nil, the binding is shown in the help screen but is not
// dispatched through the key map.
type KeyBinding[T any] struct {
	Keys        []string
	Description string
	Handler     func(*T, tea.KeyMsg) tea.Cmd
}

// BindingCategory groups related key bindings for help display.
type BindingCategory[T any] struct {
	Name     string
	Bindings []KeyBinding[T]
}

// ModelKeyBindings returns the key bindings of the chart view.
func ModelKeyBindings() []BindingCategory[Model] {
	return []BindingCategory[Model]{
		{
			Name: "General",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"h", "?"},
					Description: "Toggle this help screen",
					Handler:     (*Model).handleToggleHelp,
				},
				{
					Keys:        []string{"q", "ctrl+c"},
					Description: "Quit",
					Handler:     (*Model).handleQuit,
				},
			},
		},
		{
			Name: "Navigation",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"tab", "n"},
					Description: "Next chart",
					Handler:     (*Model).handleNextChart,
				},
				{
					Keys:        []string{"shift+tab", "N"},
					Description: "Previous chart",
					Handler:     (*Model).handlePrevChart,
				},
			},
		},
		{
			Name: "Brushing",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"u", "backspace"},
					Description: "Zoom out one level",
					Handler:     (*Model).handleZoomOut,
				},
				{
					Keys:        []string{"r"},
					Description: "Reset to the original view",
					Handler:     (*Model).handleReset,
				},
				{
					Keys:        []string{"b"},
					Description: "Make the current view the original",
					Handler:     (*Model).handleSetAsBase,
				},
				{
					Keys:        []string{"d"},
					Description: "Redraw charts (manual redraw mode)",
					Handler:     (*Model).handleRedraw,
				},
			},
		},
		{
			Name: "Mouse",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"left-click+drag"},
					Description: "Zoom into the selected region",
				},
				{
					Keys:        []string{"left-click"},
					Description: "Zoom out one level (when history is on)",
				},
			},
		},
	}
}

// buildKeyMap builds a fast lookup map from key string to handler.
func buildKeyMap[T any](categories []BindingCategory[T]) map[string]func(*T, tea.KeyMsg) tea.Cmd {
	keyMap := make(map[string]func(*T, tea.KeyMsg) tea.Cmd)
	for _, category := range categories {
		for _, binding := range category.Bindings {
			if binding.Handler == nil {
				continue
			}
			for _, key := range binding.Keys {
				keyMap[key] = binding.Handler
			}
		}
	}
	return keyMap
}
