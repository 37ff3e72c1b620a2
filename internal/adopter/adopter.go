// Package adopter provides the adopter kinds and their affinity scoring
// against adoption centers. Each kind is its own type behind the Scorer
// interface; shared arithmetic lives in free functions.
package adopter

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/adoptaverse/pawmatch/internal/shelter"
)

// ErrInvalidArgument reports bad input at construction time.
var ErrInvalidArgument = errors.New("invalid argument")

// Scorer is anything that can compute an affinity score for a center.
// Score never mutates the center.
type Scorer interface {
	ID() uuid.UUID
	Name() string
	Score(c *shelter.Center) float64
}

// Adopter is the plain adopter: someone who wants one species and scores
// a center by how many of that species it holds.
type Adopter struct {
	id      uuid.UUID
	name    string
	desired string
}

// New builds a plain Adopter.
func New(name, desiredSpecies string) (*Adopter, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: adopter name must not be empty", ErrInvalidArgument)
	}
	if desiredSpecies == "" {
		return nil, fmt.Errorf("%w: desired species must not be empty", ErrInvalidArgument)
	}
	return &Adopter{
		id:      uuid.New(),
		name:    name,
		desired: desiredSpecies,
	}, nil
}

// ID returns the adopter's stable identity, distinct even when two
// adopters share a name.
func (a *Adopter) ID() uuid.UUID { return a.id }

// SetID overrides the generated identity. Used when rehydrating an
// adopter from a registry that already assigned one.
func (a *Adopter) SetID(id uuid.UUID) { a.id = id }

// Name returns the adopter's display name.
func (a *Adopter) Name() string { return a.name }

// DesiredSpecies returns the species the adopter is looking for.
func (a *Adopter) DesiredSpecies() string { return a.desired }

// Score returns the count of the desired species at the center.
func (a *Adopter) Score(c *shelter.Center) float64 {
	return speciesCount(c, a.desired)
}

// speciesCount is the scoring building block every adopter kind uses:
// the center's count of one species, as a float.
func speciesCount(c *shelter.Center, species string) float64 {
	return float64(c.SpeciesCount(species))
}

// sumCounts totals the center's counts over a list of species.
func sumCounts(c *shelter.Center, species []string) float64 {
	var total float64
	for _, s := range species {
		total += speciesCount(c, s)
	}
	return total
}

// validSpeciesList rejects empty lists and empty entries.
func validSpeciesList(field string, species []string) error {
	if len(species) == 0 {
		return fmt.Errorf("%w: %s list must not be empty", ErrInvalidArgument, field)
	}
	for _, s := range species {
		if s == "" {
			return fmt.Errorf("%w: empty species name in %s list", ErrInvalidArgument, field)
		}
	}
	return nil
}
