package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	deckcli "swipedeck/internal/cli/deck"
	"swipedeck/internal/config"
	"swipedeck/internal/database"
	"swipedeck/internal/models"
	deckservice "swipedeck/internal/services/deck"
	"swipedeck/internal/tui"
	"swipedeck/internal/tui/components"
	"swipedeck/internal/tui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "swipedeck",
	Short: "Swipedeck - swipe through a deck of cards in the terminal",
	Long: `Swipedeck shows a deck of cards one at a time. Drag a card past the
threshold to decide left or right, or release early to snap it back.`,
	RunE: runSwipe,
}

func init() {
	rootCmd.Flags().String("deck", "", "Name of a stored deck to swipe through")
	rootCmd.Flags().String("file", "", "Path to a deck YAML file to swipe through")

	rootCmd.AddCommand(deckcli.DeckCmd())
}

func Execute() error {
	return rootCmd.Execute()
}

func runSwipe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	deckName, _ := cmd.Flags().GetString("deck")
	deckFile, _ := cmd.Flags().GetString("file")

	deck, err := resolveDeck(ctx, deckName, deckFile)
	if err != nil {
		return err
	}

	model := tui.InitialModel(cfg, deck.Name, deck.Cards, tui.Hooks{})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// resolveDeck picks the deck for this session: an explicit file, a
// stored deck by name, or the built-in demo deck when neither is given.
func resolveDeck(ctx context.Context, name, file string) (*models.Deck, error) {
	switch {
	case file != "":
		deck, err := database.LoadDeckFile(file)
		if err != nil {
			return nil, err
		}
		if err := deckservice.Validate(deck); err != nil {
			return nil, fmt.Errorf("invalid deck file %q: %w", file, err)
		}
		return deck, nil

	case name != "":
		db, err := database.InitDB(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		svc := deckservice.NewService(database.NewDeckRepo(db))
		deck, err := svc.Load(ctx, name)
		if err != nil {
			if errors.Is(err, models.ErrDeckNotFound) {
				return nil, fmt.Errorf("no stored deck named %q (import one with: swipedeck deck import <file>)", name)
			}
			return nil, err
		}
		return deck, nil

	default:
		return demoDeck(), nil
	}
}

// demoDeck is shown when no deck is selected, so the first run works
// without any setup.
func demoDeck() *models.Deck {
	return &models.Deck{
		Name: "demo",
		Cards: []models.Card{
			{
				ID:       "demo-welcome",
				Title:    "Welcome to swipedeck",
				Subtitle: "drag with the mouse, or use h/l",
				Badge:    "DEMO",
				Description: "Drag the card sideways to decide, or release early " +
					"to snap back.\n\n" +
					"Click the image area to flip through a card's images.",
				Images: []models.ImageRef{
					{Source: "builtin:gesture", Alt: "drag left or right"},
					{Source: "builtin:keys", Alt: "h swipes left, l swipes right"},
				},
			},
			{
				ID:       "demo-import",
				Title:    "Bring your own deck",
				Subtitle: "swipedeck deck import deck.yaml",
				Description: "Decks are plain YAML files: a name and a list of " +
					"cards. Imported decks are stored locally and listed with " +
					"`swipedeck deck list`.",
			},
			{
				ID:          "demo-done",
				Title:       "That's the whole tour",
				Description: "Swipe this card either way to finish the demo.",
			},
		},
	}
}
