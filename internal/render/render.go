// Package render formats scores, rankings, and center summaries for the
// CLI. Scoring itself stays numeric; the fixed-point presentation lives
// here, at the output boundary.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/adoptaverse/pawmatch/internal/match"
	"github.com/adoptaverse/pawmatch/internal/shelter"
)

// FormatScore renders a score with one decimal place.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}

// RankingTable renders ranked rows as numbered lines, best first.
func RankingTable(rows []match.Ranked) string {
	if len(rows) == 0 {
		return "(no results)\n"
	}

	var b strings.Builder
	for i, row := range rows {
		fmt.Fprintf(&b, "%2d. %-20s %s\n", i+1, row.Name, FormatScore(row.Score))
	}
	return b.String()
}

// CenterSummary renders a one-line inventory summary, species sorted
// alphabetically for stable output.
func CenterSummary(c *shelter.Center) string {
	species := make([]string, 0, len(c.Inventory))
	for s := range c.Inventory {
		species = append(species, s)
	}
	sort.Strings(species)

	parts := make([]string, 0, len(species))
	for _, s := range species {
		parts = append(parts, fmt.Sprintf("%s x%s", s, humanize.Comma(int64(c.Inventory[s]))))
	}

	inventory := "empty"
	if len(parts) > 0 {
		inventory = strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%s (%g, %g): %s", c.Name, c.Location.X, c.Location.Y, inventory)
}
