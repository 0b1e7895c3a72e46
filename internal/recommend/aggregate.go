// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package recommend

import "sort"

// finalizeCandidates is the aggregation step: combine both stage scores,
// order, truncate to k, and map identifiers back to display names.
//
// The combine function is the arithmetic mean, giving equal trust to the
// recall signal and the ranking signal. Ties on the final score break by
// ascending item identifier for determinism.
func finalizeCandidates(candidates []Candidate, k int, catalog *Catalog) []Recommendation {
	for i := range candidates {
		candidates[i].FinalScore = (candidates[i].BaseScore + candidates[i].RankScore) / 2
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FinalScore != candidates[j].FinalScore {
			return candidates[i].FinalScore > candidates[j].FinalScore
		}
		return candidates[i].ID < candidates[j].ID
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	recommendations := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recommendations = append(recommendations, Recommendation{
			Item:  catalog.NameOf(c.ID),
			Score: c.FinalScore,
		})
	}
	return recommendations
}
