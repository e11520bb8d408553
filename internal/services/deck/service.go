package deck

import (
	"context"
	"fmt"

	"swipedeck/internal/database"
	"swipedeck/internal/models"
)

// Service defines all deck-related business operations
type Service interface {
	// Read operations
	Load(ctx context.Context, name string) (*models.Deck, error)
	List(ctx context.Context) ([]*models.DeckSummary, error)

	// Import validates a deck and stores it
	Import(ctx context.Context, deck *models.Deck) error
}

// service implements Service interface
type service struct {
	store database.DeckStore
}

// NewService creates a new deck service
func NewService(store database.DeckStore) Service {
	return &service{store: store}
}

// Load fetches a stored deck by name
func (s *service) Load(ctx context.Context, name string) (*models.Deck, error) {
	if name == "" {
		return nil, models.ErrEmptyDeckName
	}

	deck, err := s.store.GetDeckByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck %q: %w", name, err)
	}
	return deck, nil
}

// List returns summaries of every stored deck
func (s *service) List(ctx context.Context) ([]*models.DeckSummary, error) {
	decks, err := s.store.ListDecks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

// Import validates and stores a deck
func (s *service) Import(ctx context.Context, deck *models.Deck) error {
	if err := Validate(deck); err != nil {
		return err
	}

	if err := s.store.ImportDeck(ctx, deck); err != nil {
		return fmt.Errorf("failed to import deck %q: %w", deck.Name, err)
	}
	return nil
}

// Validate checks a deck against the rules the swipe session relies on:
// a name, a title per card, and card IDs unique within the deck (swipe
// callbacks are correlated by ID).
func Validate(deck *models.Deck) error {
	if deck == nil || deck.Name == "" {
		return models.ErrEmptyDeckName
	}

	seen := make(map[string]struct{}, len(deck.Cards))
	for _, card := range deck.Cards {
		if card.Title == "" {
			return fmt.Errorf("card %q: %w", card.ID, models.ErrEmptyCardTitle)
		}
		if card.ID == "" {
			// IDs are assigned at import time
			continue
		}
		if _, dup := seen[card.ID]; dup {
			return fmt.Errorf("card %q: %w", card.ID, models.ErrDuplicateCardID)
		}
		seen[card.ID] = struct{}{}
	}
	return nil
}
