// Package match ranks centers for an adopter and adopters for a center.
package match

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/adoptaverse/pawmatch/internal/adopter"
	"github.com/adoptaverse/pawmatch/internal/shelter"
)

// ErrNegativeLimit reports a negative result limit.
var ErrNegativeLimit = errors.New("limit must not be negative")

// Ranked is one row of a ranking. ID keeps entities apart even when they
// share a display name; Name is what callers should surface.
type Ranked struct {
	ID    uuid.UUID
	Name  string
	Score float64
}

// RankCenters scores every center once for the adopter and returns them
// best-first. Ties on score break by name in descending order.
func RankCenters(s adopter.Scorer, centers []*shelter.Center) []Ranked {
	ranked := make([]Ranked, 0, len(centers))
	for _, c := range centers {
		ranked = append(ranked, Ranked{ID: c.ID, Name: c.Name, Score: s.Score(c)})
	}
	sortRanked(ranked)
	return ranked
}

// TopAdopters scores every adopter once against the center and returns
// the best n, same ordering as RankCenters. n of zero yields an empty
// result; n beyond the list yields the whole ranking.
func TopAdopters(c *shelter.Center, adopters []adopter.Scorer, n int) ([]Ranked, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, n)
	}

	ranked := make([]Ranked, 0, len(adopters))
	for _, a := range adopters {
		ranked = append(ranked, Ranked{ID: a.ID(), Name: a.Name(), Score: a.Score(c)})
	}
	sortRanked(ranked)

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

func sortRanked(rows []Ranked) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].Name > rows[j].Name
	})
}
