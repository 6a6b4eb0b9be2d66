// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ranking

import (
	"cmp"
	"slices"

	"github.com/danielhkuo/starvote/models"
)

// Rank returns the candidates ordered by votes, highest first.
// Equal vote counts keep their input order. The input is not modified.
func Rank(cs []models.Candidate) []models.Candidate {
	ranked := slices.Clone(cs)
	slices.SortStableFunc(ranked, func(a, b models.Candidate) int {
		return cmp.Compare(b.Votes, a.Votes)
	})
	return ranked
}

// Standings computes the leaderboard rows used by the bar chart.
// Rank is the 1-based position in Rank(cs), so tied candidates still get
// distinct ranks.
func Standings(cs []models.Candidate) []models.Standing {
	ranked := Rank(cs)
	out := make([]models.Standing, len(ranked))
	if len(ranked) == 0 {
		return out
	}

	top := ranked[0].Votes
	for i, c := range ranked {
		share := 0.0
		if top > 0 {
			share = float64(c.Votes) / float64(top)
		}
		out[i] = models.Standing{
			Candidate: c,
			Rank:      i + 1,
			Share:     share,
			Leading:   i == 0,
		}
	}
	return out
}

// RankOf returns the 1-based rank of the candidate with id, or 0.
func RankOf(standings []models.Standing, id int) int {
	for _, s := range standings {
		if s.Candidate.ID == id {
			return s.Rank
		}
	}
	return 0
}

// TopTwo returns the leader and runner-up. ok is false with fewer than
// two candidates.
func TopTwo(cs []models.Candidate) (leader, runnerUp models.Candidate, ok bool) {
	if len(cs) < 2 {
		return models.Candidate{}, models.Candidate{}, false
	}
	ranked := Rank(cs)
	return ranked[0], ranked[1], true
}
