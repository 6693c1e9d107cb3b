// Package ranking orders aggregated player results into standings.
package ranking

import "sort"

// RankedPlayer is a player with win/loss counts aggregated from eligible matches.
// Winrate is nil when the player has no eligible matches.
type RankedPlayer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MatchesWon  int    `json:"matches_won"`
	MatchesLost int    `json:"matches_lost"`
	Winrate     *int   `json:"winrate"`
}

// TotalMatches is the number of eligible matches the player appears in.
func (p RankedPlayer) TotalMatches() int {
	return p.MatchesWon + p.MatchesLost
}

// HasMatches reports whether the player has a defined winrate.
func (p RankedPlayer) HasMatches() bool {
	return p.Winrate != nil
}

// Standing is a ranked player at its display position.
type Standing struct {
	Rank int `json:"rank"`
	RankedPlayer
	TotalMatches int `json:"total_matches"`
}

// Podium reports whether the standing is in the top three.
func (s Standing) Podium() bool {
	return s.Rank >= 1 && s.Rank <= 3
}

// Winrate computes the rounded integer win percentage. It returns nil when
// no matches were played.
func Winrate(won, lost int) *int {
	total := won + lost
	if total <= 0 {
		return nil
	}
	// round half away from zero on non-negative integers
	pct := (won*200 + total) / (total * 2)
	return &pct
}

// Less reports whether a ranks strictly before b: players with a winrate come
// before players without one, then higher winrate, then more matches played.
func Less(a, b RankedPlayer) bool {
	if a.Winrate == nil || b.Winrate == nil {
		return a.Winrate != nil && b.Winrate == nil
	}
	if *a.Winrate != *b.Winrate {
		return *a.Winrate > *b.Winrate
	}
	return a.TotalMatches() > b.TotalMatches()
}

// Sort returns a new slice ordered by Less. Ties keep their input order.
func Sort(players []RankedPlayer) []RankedPlayer {
	sorted := make([]RankedPlayer, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})
	return sorted
}

// Assign turns an already sorted slice into standings; rank is position + 1.
func Assign(sorted []RankedPlayer) []Standing {
	standings := make([]Standing, len(sorted))
	for i, p := range sorted {
		standings[i] = Standing{
			Rank:         i + 1,
			RankedPlayer: p,
			TotalMatches: p.TotalMatches(),
		}
	}
	return standings
}

// Rank sorts and assigns in one step.
func Rank(players []RankedPlayer) []Standing {
	return Assign(Sort(players))
}
