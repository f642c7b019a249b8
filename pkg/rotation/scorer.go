package rotation

import (
	"sort"

	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/models"
)

// Score weights, lower total wins. The exact numbers are tuned, but their
// tiering is the contract: scarce-station re-booking outweighs a
// back-to-back repeat, which outweighs the short-gap rule, which outweighs
// the museum escape bonus, which outweighs variety. The random jitter stays
// strictly below the variety step so it can only decide ties.
const (
	scarceRepeatPenalty = 10_000_000
	repeatPenalty       = 5_000_000
	shortGapPenalty     = 200_000
	museumEscapeBonus   = -1_000_000
	conservationPenalty = 2_000
	varietyPenalty      = 1_000
	jitterSpan          = 999.0
)

// RankedCandidate pairs a pool member with the score computed for one
// station. The full ranking is exposed so callers can see why a pick won,
// not just who.
type RankedCandidate struct {
	Person string  `json:"person"`
	Score  float64 `json:"score"`
}

// Rank scores every pool member for a station and returns them best-first.
// Jitter is drawn per candidate per call; exact ties keep pool order.
func (p *Planner) Rank(station models.Station, pool []string) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, len(pool))
	for _, person := range pool {
		ranked = append(ranked, RankedCandidate{
			Person: person,
			Score:  p.score(station, person),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	return ranked
}

func (p *Planner) score(station models.Station, person string) float64 {
	hist := p.History[person]
	score := p.rng.Float64() * jitterSpan

	if n := len(hist); n > 0 && hist[n-1] == station {
		score += repeatPenalty
	}
	if n := len(hist); n > 1 && hist[n-2] == station {
		score += shortGapPenalty
	}
	if station == models.StationPlanetarium && p.timesDone(person, models.StationPlanetarium) > 0 {
		score += scarceRepeatPenalty
	}
	if station != models.StationMuseum {
		if n := len(hist); n > 0 && hist[n-1] == models.StationMuseum {
			score += museumEscapeBonus
		}
	}
	// keep people who have not done the planetarium yet available for it
	if station != models.StationPlanetarium && p.timesDone(person, models.StationPlanetarium) == 0 {
		score += conservationPenalty
	}
	score += float64(p.timesDone(person, station)) * varietyPenalty

	return score
}
