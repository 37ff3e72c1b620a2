package match

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adoptaverse/pawmatch/internal/adopter"
	"github.com/adoptaverse/pawmatch/internal/geo"
	"github.com/adoptaverse/pawmatch/internal/shelter"
)

// countingScorer wraps a fixed score table keyed by center ID and counts
// how often each center is scored.
type countingScorer struct {
	id     uuid.UUID
	name   string
	scores map[uuid.UUID]float64
	calls  map[uuid.UUID]int
}

func newCountingScorer(name string) *countingScorer {
	return &countingScorer{
		id:     uuid.New(),
		name:   name,
		scores: make(map[uuid.UUID]float64),
		calls:  make(map[uuid.UUID]int),
	}
}

func (s *countingScorer) ID() uuid.UUID { return s.id }
func (s *countingScorer) Name() string  { return s.name }

func (s *countingScorer) Score(c *shelter.Center) float64 {
	s.calls[c.ID]++
	return s.scores[c.ID]
}

func makeCenter(t *testing.T, name string, inventory map[string]int) *shelter.Center {
	t.Helper()
	c, err := shelter.NewCenter(name, inventory, geo.Point{})
	require.NoError(t, err)
	return c
}

func TestRankCentersOrdering(t *testing.T) {
	a := makeCenter(t, "Alpha", nil)
	b := makeCenter(t, "Bravo", nil)
	c := makeCenter(t, "Charlie", nil)
	d := makeCenter(t, "Delta", nil)

	scorer := newCountingScorer("Two")
	scorer.scores[a.ID] = 3
	scorer.scores[b.ID] = 7
	scorer.scores[c.ID] = 7 // ties with Bravo, wins on descending name
	scorer.scores[d.ID] = 1

	ranked := RankCenters(scorer, []*shelter.Center{a, b, c, d})

	require.Len(t, ranked, 4)
	assert.Equal(t, "Charlie", ranked[0].Name)
	assert.Equal(t, "Bravo", ranked[1].Name)
	assert.Equal(t, "Alpha", ranked[2].Name)
	assert.Equal(t, "Delta", ranked[3].Name)

	for _, center := range []*shelter.Center{a, b, c, d} {
		assert.Equal(t, 1, scorer.calls[center.ID], "each center must be scored exactly once")
	}
}

func TestRankCentersDuplicateNamesSurvive(t *testing.T) {
	first := makeCenter(t, "Place1", map[string]int{"Cat": 3})
	second := makeCenter(t, "Place1", map[string]int{"Cat": 9})

	a, err := adopter.New("Two", "Cat")
	require.NoError(t, err)

	ranked := RankCenters(a, []*shelter.Center{first, second})

	require.Len(t, ranked, 2, "same-named centers must both appear")
	assert.Equal(t, second.ID, ranked[0].ID)
	assert.Equal(t, float64(9), ranked[0].Score)
	assert.Equal(t, first.ID, ranked[1].ID)
	assert.Equal(t, float64(3), ranked[1].Score)
}

func TestTopAdoptersOrderingAndTruncation(t *testing.T) {
	center := makeCenter(t, "Place1", map[string]int{"Cat": 12, "Dog": 2, "Horse": 25})

	two, err := adopter.New("Two", "Cat")
	require.NoError(t, err)
	three, err := adopter.NewFlexible("Three", "Horse", "Lizard", "Cat")
	require.NoError(t, err)
	four, err := adopter.NewFearful("Four", "Cat", "Dog")
	require.NoError(t, err)
	six, err := adopter.NewAllergic("Six", "Cat", "Dog")
	require.NoError(t, err)

	all := []adopter.Scorer{two, three, four, six}

	// Scores: Three = 25 + 0.3*12 = 28.6, Two = 12, Four = 11.4, Six = 0.
	ranked, err := TopAdopters(center, all, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 4, "n beyond the list yields the full ranking")

	names := []string{ranked[0].Name, ranked[1].Name, ranked[2].Name, ranked[3].Name}
	assert.Equal(t, []string{"Three", "Two", "Four", "Six"}, names)
	assert.InDelta(t, 28.6, ranked[0].Score, 1e-9)

	// Truncation keeps the head of the same ordering.
	top2, err := TopAdopters(center, all, 2)
	require.NoError(t, err)
	require.Len(t, top2, 2)
	assert.Equal(t, "Three", top2[0].Name)
	assert.Equal(t, "Two", top2[1].Name)
}

func TestTopAdoptersTieBreak(t *testing.T) {
	// Both want Cat: identical scores, descending name order wins.
	center := makeCenter(t, "Place1", map[string]int{"Cat": 5})

	anna, err := adopter.New("Anna", "Cat")
	require.NoError(t, err)
	zoe, err := adopter.New("Zoe", "Cat")
	require.NoError(t, err)

	ranked, err := TopAdopters(center, []adopter.Scorer{anna, zoe}, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Zoe", ranked[0].Name)
	assert.Equal(t, "Anna", ranked[1].Name)
}

func TestTopAdoptersDuplicateNamesSurvive(t *testing.T) {
	center := makeCenter(t, "Place1", map[string]int{"Cat": 5, "Dog": 1})

	first, err := adopter.New("Sam", "Cat")
	require.NoError(t, err)
	second, err := adopter.New("Sam", "Dog")
	require.NoError(t, err)

	ranked, err := TopAdopters(center, []adopter.Scorer{first, second}, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 2, "same-named adopters must both appear")
	assert.NotEqual(t, ranked[0].ID, ranked[1].ID)
	assert.Equal(t, float64(5), ranked[0].Score)
	assert.Equal(t, float64(1), ranked[1].Score)
}

func TestTopAdoptersLimit(t *testing.T) {
	center := makeCenter(t, "Place1", map[string]int{"Cat": 5})
	a, err := adopter.New("Two", "Cat")
	require.NoError(t, err)

	ranked, err := TopAdopters(center, []adopter.Scorer{a}, 0)
	require.NoError(t, err)
	assert.Empty(t, ranked, "n of zero yields an empty result")

	_, err = TopAdopters(center, []adopter.Scorer{a}, -1)
	require.ErrorIs(t, err, ErrNegativeLimit)
}

func TestRankCentersEmpty(t *testing.T) {
	a, err := adopter.New("Two", "Cat")
	require.NoError(t, err)
	assert.Empty(t, RankCenters(a, nil))
}
