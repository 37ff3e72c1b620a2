// Package shelter holds the adoption center data model.
package shelter

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/adoptaverse/pawmatch/internal/geo"
)

var (
	// ErrInvalidArgument reports bad input at construction time.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfStock reports an adoption request for a species the center
	// has none of.
	ErrOutOfStock = errors.New("out of stock")
)

// Center is an adoption center: a named inventory of animals by species
// at a fixed location. The ID distinguishes centers that share a name.
type Center struct {
	ID        uuid.UUID
	Name      string
	Inventory map[string]int
	Location  geo.Point
}

// NewCenter builds a Center with a fresh ID. The inventory is copied, so
// the caller's map stays independent of the center's.
func NewCenter(name string, inventory map[string]int, location geo.Point) (*Center, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: center name must not be empty", ErrInvalidArgument)
	}

	inv := make(map[string]int, len(inventory))
	for species, count := range inventory {
		if species == "" {
			return nil, fmt.Errorf("%w: empty species name in inventory", ErrInvalidArgument)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: negative count %d for species %q", ErrInvalidArgument, count, species)
		}
		inv[species] = count
	}

	return &Center{
		ID:        uuid.New(),
		Name:      name,
		Inventory: inv,
		Location:  location,
	}, nil
}

// SpeciesCount returns how many animals of the given species the center
// holds. Species not in the inventory count as zero.
func (c *Center) SpeciesCount(species string) int {
	return c.Inventory[species]
}

// Adopt removes one animal of the given species from the inventory.
// Returns ErrOutOfStock if the center has none left.
func (c *Center) Adopt(species string) error {
	if c.Inventory[species] <= 0 {
		return fmt.Errorf("%w: no %s at %s", ErrOutOfStock, species, c.Name)
	}
	c.Inventory[species]--
	return nil
}
