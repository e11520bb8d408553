package models

import "errors"

// Domain-specific errors for deck validation and lookup
var (
	// ErrEmptyDeckName indicates a deck was supplied without a name
	ErrEmptyDeckName = errors.New("deck name cannot be empty")

	// ErrEmptyCardTitle indicates a card was supplied without a title
	ErrEmptyCardTitle = errors.New("card title cannot be empty")

	// ErrDuplicateCardID indicates two cards in one deck share an ID
	ErrDuplicateCardID = errors.New("card IDs must be unique within a deck")

	// ErrDeckNotFound indicates the requested deck does not exist in the store
	ErrDeckNotFound = errors.New("deck not found")
)
