package shelter

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/adoptaverse/pawmatch/internal/geo"
)

func TestNewCenterValidation(t *testing.T) {
	tests := []struct {
		name      string
		center    string
		inventory map[string]int
		wantErr   bool
	}{
		{
			name:      "valid center",
			center:    "Place1",
			inventory: map[string]int{"Cat": 12, "Dog": 2},
			wantErr:   false,
		},
		{
			name:      "empty inventory is fine",
			center:    "Place2",
			inventory: nil,
			wantErr:   false,
		},
		{
			name:      "empty name rejected",
			center:    "",
			inventory: map[string]int{"Cat": 1},
			wantErr:   true,
		},
		{
			name:      "negative count rejected",
			center:    "Place3",
			inventory: map[string]int{"Cat": -1},
			wantErr:   true,
		},
		{
			name:      "empty species name rejected",
			center:    "Place4",
			inventory: map[string]int{"": 3},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCenter(tt.center, tt.inventory, geo.Point{})
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.ID == uuid.Nil {
				t.Error("expected a non-zero center ID")
			}
		})
	}
}

func TestNewCenterCopiesInventory(t *testing.T) {
	inv := map[string]int{"Cat": 5}
	c, err := NewCenter("Place1", inv, geo.Point{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv["Cat"] = 99
	if got := c.SpeciesCount("Cat"); got != 5 {
		t.Errorf("inventory not copied: got %d, want 5", got)
	}
}

func TestSpeciesCountAbsentIsZero(t *testing.T) {
	c, err := NewCenter("Place1", map[string]int{"Dog": 2}, geo.Point{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.SpeciesCount("Unicorn"); got != 0 {
		t.Errorf("SpeciesCount(absent) = %d, want 0", got)
	}
}

func TestAdopt(t *testing.T) {
	c, err := NewCenter("Place1", map[string]int{"Cat": 2}, geo.Point{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Adopt("Cat"); err != nil {
		t.Fatalf("first adopt failed: %v", err)
	}
	if got := c.SpeciesCount("Cat"); got != 1 {
		t.Errorf("count after adopt = %d, want 1", got)
	}

	if err := c.Adopt("Cat"); err != nil {
		t.Fatalf("second adopt failed: %v", err)
	}
	if got := c.SpeciesCount("Cat"); got != 0 {
		t.Errorf("count after second adopt = %d, want 0", got)
	}

	// Third adopt hits the floor.
	if err := c.Adopt("Cat"); !errors.Is(err, ErrOutOfStock) {
		t.Errorf("expected ErrOutOfStock, got %v", err)
	}

	// Absent species behaves the same as zero stock.
	if err := c.Adopt("Lizard"); !errors.Is(err, ErrOutOfStock) {
		t.Errorf("expected ErrOutOfStock for absent species, got %v", err)
	}
}
