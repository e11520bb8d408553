package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"swipedeck/internal/config"
)

// keyMap holds the active key bindings, built from the user's config.
// Implements help.KeyMap so the help bubble can describe them.
type keyMap struct {
	SwipeLeft  key.Binding
	SwipeRight key.Binding
	NextImage  key.Binding
	PrevImage  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// newKeyMap builds bindings from configured keys, with the arrow keys
// always available for swiping.
func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		SwipeLeft: key.NewBinding(
			key.WithKeys(km.SwipeLeft, "left"),
			key.WithHelp(km.SwipeLeft+"/←", "swipe left"),
		),
		SwipeRight: key.NewBinding(
			key.WithKeys(km.SwipeRight, "right"),
			key.WithHelp(km.SwipeRight+"/→", "swipe right"),
		),
		NextImage: key.NewBinding(
			key.WithKeys(km.NextImage),
			key.WithHelp(km.NextImage, "next image"),
		),
		PrevImage: key.NewBinding(
			key.WithKeys(km.PrevImage),
			key.WithHelp(km.PrevImage, "previous image"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwipeLeft, k.SwipeRight, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwipeLeft, k.SwipeRight},
		{k.NextImage, k.PrevImage},
		{k.Help, k.Quit},
	}
}
