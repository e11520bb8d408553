package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"swipedeck/internal/config"
	"swipedeck/internal/deck"
	"swipedeck/internal/models"
)

// Hooks is the host-facing surface of the swipe view: swipe/completion
// callbacks and optional renderer overrides. All fields may be nil.
type Hooks struct {
	// OnSwipe fires synchronously at the moment of commit
	OnSwipe func(cardID string, dir models.Direction)

	// OnComplete fires exactly once when the deck is exhausted
	OnComplete func()

	// RenderBody overrides the default card body layout
	RenderBody func(models.Card) string

	// RenderImage overrides the default image pane
	RenderImage func(source, alt string) string
}

// Model represents the application state for the TUI
type Model struct {
	config     *config.Config
	controller *deck.Controller
	deckName   string
	hooks      Hooks

	width  int
	height int

	// Drag state. anchorX is the cell where the press landed; pressedImage
	// remembers whether the press could still become a pager click.
	dragging     bool
	anchorX      int
	pressedImage bool

	// Spring animation toward springTarget (0 for snap-back, off-screen
	// for an exit slide)
	spring       harmonica.Spring
	springVel    float64
	springTarget float64
	animating    bool

	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
}

// InitialModel creates the TUI model for one deck session
func InitialModel(cfg *config.Config, deckName string, cards []models.Card, hooks Hooks) Model {
	m := Model{
		config:   cfg,
		deckName: deckName,
		hooks:    hooks,
		spring:   harmonica.NewSpring(harmonica.FPS(animFPS), 8.0, 0.8),
		keys:     newKeyMap(cfg.KeyMappings),
		help:     help.New(),
	}

	m.controller = deck.New(deck.Options{
		Cards:       cards,
		Threshold:   cfg.Swipe.Threshold,
		SettleDelay: time.Duration(cfg.Swipe.SettleMs) * time.Millisecond,
		OnSwipe: func(cardID string, dir models.Direction) {
			slog.Info("card swiped", "deck", deckName, "card", cardID, "direction", dir)
			if hooks.OnSwipe != nil {
				hooks.OnSwipe(cardID, dir)
			}
		},
		OnComplete: func() {
			slog.Info("deck complete", "deck", deckName)
			if hooks.OnComplete != nil {
				hooks.OnComplete()
			}
		},
	})

	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller exposes the deck state machine, primarily for tests
func (m Model) Controller() *deck.Controller {
	return m.controller
}
