//go:build ignore
// +build ignore

// Helper script to seed the local database with a sample deck
// Run with: go run add_demo_deck.go

package main

import (
	"context"
	"log"

	"swipedeck/internal/database"
	"swipedeck/internal/models"
	deckservice "swipedeck/internal/services/deck"
)

func main() {
	ctx := context.Background()

	db, err := database.InitDB(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	svc := deckservice.NewService(database.NewDeckRepo(db))

	deck := &models.Deck{
		Name: "sample-apartments",
		Cards: []models.Card{
			{
				Title:       "Sunny studio on 5th",
				Subtitle:    "$1,450/mo · 38 m²",
				Badge:       "NEW",
				Description: "Top floor, **south-facing**, laundry in building.",
				Images: []models.ImageRef{
					{Source: "photos/studio-front.jpg", Alt: "living room"},
					{Source: "photos/studio-kitchen.jpg", Alt: "kitchen"},
				},
			},
			{
				Title:       "Two-bed near the park",
				Subtitle:    "$2,100/mo · 64 m²",
				Description: "Ground floor with a small yard. Cats allowed.",
				Images: []models.ImageRef{
					{Source: "photos/twobed-yard.jpg", Alt: "back yard"},
				},
			},
			{
				Title:       "Loft above the bakery",
				Subtitle:    "$1,800/mo · 52 m²",
				Badge:       "POPULAR",
				Description: "Exposed brick, smells like bread every morning.",
			},
		},
	}

	if err := svc.Import(ctx, deck); err != nil {
		log.Fatalf("Failed to import deck: %v", err)
	}

	log.Printf("Imported deck %q with %d cards", deck.Name, len(deck.Cards))
}
