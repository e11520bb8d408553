package database

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"swipedeck/internal/models"
)

// LoadDeckFile parses a YAML deck definition from disk. Used both for
// one-shot play of a deck file and for importing it into the store.
func LoadDeckFile(path string) (*models.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	var deck models.Deck
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("failed to parse deck file %s: %w", path, err)
	}

	return &deck, nil
}
