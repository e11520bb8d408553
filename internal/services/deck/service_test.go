package deck

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"swipedeck/internal/database"
	"swipedeck/internal/models"
)

// setupService creates a service backed by an in-memory deck store
func setupService(t *testing.T) Service {
	t.Helper()

	db, err := database.OpenDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { closeDB(t, db) })

	return NewService(database.NewDeckRepo(db))
}

func closeDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Errorf("Failed to close test database: %v", err)
	}
}

func TestImportAndLoad(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	deck := &models.Deck{
		Name: "demo",
		Cards: []models.Card{
			{ID: "a", Title: "A"},
			{ID: "b", Title: "B"},
		},
	}
	if err := svc.Import(ctx, deck); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	got, err := svc.Load(ctx, "demo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Cards) != 2 {
		t.Errorf("loaded %d cards, want 2", len(got.Cards))
	}

	decks, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(decks) != 1 || decks[0].Name != "demo" {
		t.Errorf("List = %+v, want one deck named demo", decks)
	}
}

func TestLoad_EmptyNameRejected(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Load(context.Background(), "")
	if !errors.Is(err, models.ErrEmptyDeckName) {
		t.Errorf("error = %v, want ErrEmptyDeckName", err)
	}
}

func TestLoad_MissingDeck(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Load(context.Background(), "ghost")
	if !errors.Is(err, models.ErrDeckNotFound) {
		t.Errorf("error = %v, want ErrDeckNotFound", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		deck    *models.Deck
		wantErr error
	}{
		{
			name:    "nil deck",
			deck:    nil,
			wantErr: models.ErrEmptyDeckName,
		},
		{
			name:    "nameless deck",
			deck:    &models.Deck{Cards: []models.Card{{ID: "a", Title: "A"}}},
			wantErr: models.ErrEmptyDeckName,
		},
		{
			name:    "untitled card",
			deck:    &models.Deck{Name: "d", Cards: []models.Card{{ID: "a"}}},
			wantErr: models.ErrEmptyCardTitle,
		},
		{
			name: "duplicate card IDs",
			deck: &models.Deck{Name: "d", Cards: []models.Card{
				{ID: "a", Title: "A"},
				{ID: "a", Title: "A again"},
			}},
			wantErr: models.ErrDuplicateCardID,
		},
		{
			name: "missing IDs allowed",
			deck: &models.Deck{Name: "d", Cards: []models.Card{
				{Title: "first"},
				{Title: "second"},
			}},
			wantErr: nil,
		},
		{
			name:    "empty deck is valid",
			deck:    &models.Deck{Name: "d"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.deck)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestImport_InvalidDeckRejected(t *testing.T) {
	svc := setupService(t)

	err := svc.Import(context.Background(), &models.Deck{
		Name:  "bad",
		Cards: []models.Card{{ID: "x"}},
	})
	if !errors.Is(err, models.ErrEmptyCardTitle) {
		t.Errorf("error = %v, want ErrEmptyCardTitle", err)
	}
}
