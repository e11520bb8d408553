package models

import (
	"errors"
	"testing"
)

func TestDirection_Sign(t *testing.T) {
	if got := DirectionLeft.Sign(); got != -1 {
		t.Errorf("DirectionLeft.Sign() = %v, want -1", got)
	}
	if got := DirectionRight.Sign(); got != 1 {
		t.Errorf("DirectionRight.Sign() = %v, want 1", got)
	}
}

func TestDirection_String(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirectionLeft, "left"},
		{DirectionRight, "right"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrors_Unique(t *testing.T) {
	// Ensure each sentinel is distinct so errors.Is checks stay meaningful
	if errors.Is(ErrEmptyDeckName, ErrEmptyCardTitle) {
		t.Error("ErrEmptyDeckName should not equal ErrEmptyCardTitle")
	}
	if errors.Is(ErrDuplicateCardID, ErrDeckNotFound) {
		t.Error("ErrDuplicateCardID should not equal ErrDeckNotFound")
	}
}
