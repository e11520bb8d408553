package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"swipedeck/internal/models"
)

// DeckStore defines the read/import operations the rest of the app needs.
// The store is read-only at play time; writes only happen through Import.
type DeckStore interface {
	ListDecks(ctx context.Context) ([]*models.DeckSummary, error)
	GetDeckByName(ctx context.Context, name string) (*models.Deck, error)
	ImportDeck(ctx context.Context, deck *models.Deck) error
}

// DeckRepo implements DeckStore over a SQLite connection
type DeckRepo struct {
	db *sql.DB
}

// NewDeckRepo creates a repository wrapping the given database connection
func NewDeckRepo(db *sql.DB) *DeckRepo {
	return &DeckRepo{db: db}
}

// ListDecks returns summaries of every stored deck, ordered by name
func (r *DeckRepo) ListDecks(ctx context.Context) ([]*models.DeckSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.id, d.name, COUNT(c.id)
		FROM decks d
		LEFT JOIN cards c ON c.deck_id = d.id
		GROUP BY d.id, d.name
		ORDER BY d.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	defer rows.Close()

	var summaries []*models.DeckSummary
	for rows.Next() {
		s := &models.DeckSummary{}
		if err := rows.Scan(&s.ID, &s.Name, &s.CardCount); err != nil {
			return nil, fmt.Errorf("failed to scan deck summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetDeckByName loads a full deck, cards in stored order, each card's
// images in stored order.
func (r *DeckRepo) GetDeckByName(ctx context.Context, name string) (*models.Deck, error) {
	var deckID int
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM decks WHERE name = ?", name,
	).Scan(&deckID)
	if err == sql.ErrNoRows {
		return nil, models.ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up deck %q: %w", name, err)
	}

	deck := &models.Deck{Name: name}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, COALESCE(subtitle, ''), COALESCE(description, ''), COALESCE(badge, '')
		FROM cards
		WHERE deck_id = ?
		ORDER BY position
	`, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var card models.Card
		if err := rows.Scan(&card.ID, &card.Title, &card.Subtitle, &card.Description, &card.Badge); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		deck.Cards = append(deck.Cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range deck.Cards {
		images, err := r.cardImages(ctx, deckID, deck.Cards[i].ID)
		if err != nil {
			return nil, err
		}
		deck.Cards[i].Images = images
	}

	return deck, nil
}

func (r *DeckRepo) cardImages(ctx context.Context, deckID int, cardID string) ([]models.ImageRef, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT source, COALESCE(alt, '')
		FROM card_images
		WHERE deck_id = ? AND card_id = ?
		ORDER BY position
	`, deckID, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load images for card %q: %w", cardID, err)
	}
	defer rows.Close()

	var images []models.ImageRef
	for rows.Next() {
		var img models.ImageRef
		if err := rows.Scan(&img.Source, &img.Alt); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// ImportDeck stores a full deck transactionally, replacing any deck with
// the same name. Cards without an ID get a generated one.
func (r *DeckRepo) ImportDeck(ctx context.Context, deck *models.Deck) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	// Replace an existing deck of the same name wholesale
	if _, err := tx.ExecContext(ctx, "DELETE FROM decks WHERE name = ?", deck.Name); err != nil {
		return fmt.Errorf("failed to clear existing deck: %w", err)
	}

	res, err := tx.ExecContext(ctx, "INSERT INTO decks (name) VALUES (?)", deck.Name)
	if err != nil {
		return fmt.Errorf("failed to insert deck: %w", err)
	}
	deckID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read deck id: %w", err)
	}

	for pos, card := range deck.Cards {
		cardID := card.ID
		if cardID == "" {
			cardID = uuid.NewString()
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO cards (id, deck_id, position, title, subtitle, description, badge)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, cardID, deckID, pos, card.Title, card.Subtitle, card.Description, card.Badge)
		if err != nil {
			return fmt.Errorf("failed to insert card %q: %w", card.Title, err)
		}

		for ipos, img := range card.Images {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO card_images (deck_id, card_id, position, source, alt)
				VALUES (?, ?, ?, ?, ?)
			`, deckID, cardID, ipos, img.Source, img.Alt)
			if err != nil {
				return fmt.Errorf("failed to insert image for card %q: %w", card.Title, err)
			}
		}
	}

	return tx.Commit()
}
