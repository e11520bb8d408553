package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the deck store schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create decks table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS decks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Create cards table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS cards (
			id TEXT NOT NULL,
			deck_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			subtitle TEXT,
			description TEXT,
			badge TEXT,
			PRIMARY KEY (deck_id, id),
			FOREIGN KEY (deck_id) REFERENCES decks(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create card_images table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS card_images (
			deck_id INTEGER NOT NULL,
			card_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			source TEXT NOT NULL,
			alt TEXT,
			PRIMARY KEY (deck_id, card_id, position),
			FOREIGN KEY (deck_id, card_id) REFERENCES cards(deck_id, id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create index for ordered card reads
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_cards_deck
		ON cards(deck_id, position)
	`)
	return err
}
