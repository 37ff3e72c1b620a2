package adopter

import (
	"fmt"

	"github.com/adoptaverse/pawmatch/internal/shelter"
)

// considerationWeight discounts species an adopter would settle for, and
// likewise scales the penalty for species an adopter fears.
const considerationWeight = 0.3

// Flexible wants one species but will consider others at a discount.
type Flexible struct {
	Adopter
	considered []string
}

// NewFlexible builds a Flexible adopter. A single considered species is
// simply a one-element list.
func NewFlexible(name, desiredSpecies string, considered ...string) (*Flexible, error) {
	base, err := New(name, desiredSpecies)
	if err != nil {
		return nil, err
	}
	if err := validSpeciesList("considered", considered); err != nil {
		return nil, err
	}
	return &Flexible{Adopter: *base, considered: considered}, nil
}

// Score is the desired-species count plus 0.3x the counts of every
// considered species.
func (f *Flexible) Score(c *shelter.Center) float64 {
	return speciesCount(c, f.desired) + considerationWeight*sumCounts(c, f.considered)
}

// Fearful wants one species but is put off by the presence of others.
type Fearful struct {
	Adopter
	feared []string
}

// NewFearful builds a Fearful adopter.
func NewFearful(name, desiredSpecies string, feared ...string) (*Fearful, error) {
	base, err := New(name, desiredSpecies)
	if err != nil {
		return nil, err
	}
	if err := validSpeciesList("feared", feared); err != nil {
		return nil, err
	}
	return &Fearful{Adopter: *base, feared: feared}, nil
}

// Score is the desired-species count minus 0.3x the counts of every
// feared species. It can go negative.
func (f *Fearful) Score(c *shelter.Center) float64 {
	return speciesCount(c, f.desired) - considerationWeight*sumCounts(c, f.feared)
}

// Allergic cannot visit a center holding any species on the allergy list.
type Allergic struct {
	Adopter
	allergic []string
}

// NewAllergic builds an Allergic adopter.
func NewAllergic(name, desiredSpecies string, allergic ...string) (*Allergic, error) {
	base, err := New(name, desiredSpecies)
	if err != nil {
		return nil, err
	}
	if err := validSpeciesList("allergic", allergic); err != nil {
		return nil, err
	}
	return &Allergic{Adopter: *base, allergic: allergic}, nil
}

// Score is zero when the center holds any allergy-listed species,
// otherwise the desired-species count.
func (a *Allergic) Score(c *shelter.Center) float64 {
	for _, s := range a.allergic {
		if c.SpeciesCount(s) > 0 {
			return 0
		}
	}
	return speciesCount(c, a.desired)
}

// MedicatedAllergic is allergic but medicated: allergens present at a
// center discount the score instead of zeroing it, by the weakest
// medicine effectiveness among the allergens actually present.
type MedicatedAllergic struct {
	Adopter
	allergic      []string
	effectiveness map[string]float64
}

// NewMedicatedAllergic builds a MedicatedAllergic adopter. Effectiveness
// values must lie in [0, 1]; allergens missing from the map are treated
// as fully handled (multiplier 1).
func NewMedicatedAllergic(name, desiredSpecies string, effectiveness map[string]float64, allergic ...string) (*MedicatedAllergic, error) {
	base, err := New(name, desiredSpecies)
	if err != nil {
		return nil, err
	}
	if err := validSpeciesList("allergic", allergic); err != nil {
		return nil, err
	}
	eff := make(map[string]float64, len(effectiveness))
	for species, v := range effectiveness {
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("%w: effectiveness %v for %q outside [0, 1]", ErrInvalidArgument, v, species)
		}
		eff[species] = v
	}
	return &MedicatedAllergic{Adopter: *base, allergic: allergic, effectiveness: eff}, nil
}

// Score is the desired-species count when no allergens are present,
// otherwise the count multiplied by the minimum effectiveness over the
// allergens the center holds.
func (m *MedicatedAllergic) Score(c *shelter.Center) float64 {
	coefficient := 1.0
	present := false
	for _, s := range m.allergic {
		if c.SpeciesCount(s) == 0 {
			continue
		}
		present = true
		eff, ok := m.effectiveness[s]
		if !ok {
			eff = 1
		}
		if eff < coefficient {
			coefficient = eff
		}
	}
	if !present {
		return speciesCount(c, m.desired)
	}
	return coefficient * speciesCount(c, m.desired)
}
