package adopter

import (
	"math/rand"
	"time"

	"github.com/adoptaverse/pawmatch/internal/geo"
	"github.com/adoptaverse/pawmatch/internal/shelter"
)

// Sluggish dislikes travelling: the further a center is, the more its
// score is discounted, with a random mood factor per distance bucket.
type Sluggish struct {
	Adopter
	location geo.Point
	rng      *rand.Rand
}

// NewSluggish builds a Sluggish adopter. The random source drives the
// mood factor; pass a seeded source for reproducible scores, or nil for
// a time-seeded one.
func NewSluggish(name, desiredSpecies string, location geo.Point, rng *rand.Rand) (*Sluggish, error) {
	base, err := New(name, desiredSpecies)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sluggish{Adopter: *base, location: location, rng: rng}, nil
}

// DistanceTo returns the straight-line distance to the center.
func (s *Sluggish) DistanceTo(c *shelter.Center) float64 {
	return s.location.Distance(c.Location)
}

// Score is the desired-species count scaled by a travel coefficient.
// Each call draws a fresh coefficient.
func (s *Sluggish) Score(c *shelter.Center) float64 {
	return s.travelCoefficient(s.DistanceTo(c)) * speciesCount(c, s.desired)
}

// travelCoefficient maps a distance to its bucket's coefficient:
// under 1 there is no discount; beyond that each bucket draws uniformly
// from a band that worsens with distance, [0.1, 0.5) from 5 onward.
func (s *Sluggish) travelCoefficient(distance float64) float64 {
	switch {
	case distance < 1:
		return 1
	case distance < 3:
		return s.uniform(0.7, 0.9)
	case distance < 5:
		return s.uniform(0.5, 0.7)
	default:
		return s.uniform(0.1, 0.5)
	}
}

func (s *Sluggish) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
