package models

// ImageRef points at one image belonging to a card.
// Source is whatever the host understands (path, URL); Alt is the
// short text shown when the image itself cannot be rendered.
type ImageRef struct {
	Source string `yaml:"source"`
	Alt    string `yaml:"alt"`
}

// Card represents a single swipeable card in a deck.
// Cards are immutable once loaded; the component only ever reads them.
type Card struct {
	// ID is a stable identifier, unique within a deck. Swipe callbacks
	// report it so the host can correlate decisions with its own data.
	ID string `yaml:"id"`

	// Title is the only required display field
	Title string `yaml:"title"`

	// Subtitle is a short secondary line under the title
	Subtitle string `yaml:"subtitle"`

	// Description is markdown, rendered through glamour in the default body
	Description string `yaml:"description"`

	// Badge is a short tag shown in the card corner (e.g. "NEW")
	Badge string `yaml:"badge"`

	// Images is the ordered image carousel for this card; may be empty
	Images []ImageRef `yaml:"images"`
}

// Deck is a named, ordered set of cards for one session.
type Deck struct {
	Name  string `yaml:"name"`
	Cards []Card `yaml:"cards"`
}

// DeckSummary is a DTO for listing stored decks without loading their cards
type DeckSummary struct {
	ID        int
	Name      string
	CardCount int
}
