// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package recommend

import "sort"

// candidateGenerator is Stage 1: cheap, high-recall retrieval of plausible
// complementary items from the co-occurrence index.
type candidateGenerator struct {
	neighbors map[ItemID][]Neighbor
	catalog   *Catalog
	poolSize  int
}

func newCandidateGenerator(neighbors map[ItemID][]Neighbor, catalog *Catalog, poolSize int) *candidateGenerator {
	return &candidateGenerator{
		neighbors: neighbors,
		catalog:   catalog,
		poolSize:  poolSize,
	}
}

// Generate returns up to poolSize candidates with base scores in [0, 1].
// Neighbor weights are summed across all cart items; items already in the
// cart are excluded. The result never shares an entry with cartIDs and is
// empty only when the catalog itself is empty.
func (g *candidateGenerator) Generate(cartIDs []ItemID) (candidates []Candidate, fallback bool) {
	inCart := make(map[ItemID]struct{}, len(cartIDs))
	for _, id := range cartIDs {
		inCart[id] = struct{}{}
	}

	accumulated := make(map[ItemID]float64)
	for _, id := range cartIDs {
		for _, n := range g.neighbors[id] {
			if _, excluded := inCart[n.ID]; excluded {
				continue
			}
			accumulated[n.ID] += n.Weight
		}
	}

	if len(accumulated) == 0 {
		// Cold start: the cart resolved to nothing with co-occurrence
		// signal. Fall back to the global popularity ranking.
		return g.popularityFallback(inCart), true
	}

	candidates = make([]Candidate, 0, len(accumulated))
	for id, weight := range accumulated {
		candidates = append(candidates, Candidate{ID: id, BaseScore: weight})
	}
	sortCandidatesByBase(candidates)

	if len(candidates) > g.poolSize {
		candidates = candidates[:g.poolSize]
	}
	normalizeBaseScores(candidates)

	return candidates, false
}

// popularityFallback ranks the catalog by global popularity weight,
// excluding cart items, normalized the same way as the main path.
func (g *candidateGenerator) popularityFallback(inCart map[ItemID]struct{}) []Candidate {
	candidates := make([]Candidate, 0, g.poolSize)
	for _, id := range g.catalog.byPopularity {
		if _, excluded := inCart[id]; excluded {
			continue
		}
		item, _ := g.catalog.Item(id)
		candidates = append(candidates, Candidate{ID: id, BaseScore: item.Popularity})
		if len(candidates) == g.poolSize {
			break
		}
	}

	normalizeBaseScores(candidates)
	return candidates
}

// sortCandidatesByBase orders by accumulated weight descending with an
// ascending-ID tie-break. The tie-break keeps the selection deterministic
// regardless of map iteration order.
func sortCandidatesByBase(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].BaseScore != candidates[j].BaseScore {
			return candidates[i].BaseScore > candidates[j].BaseScore
		}
		return candidates[i].ID < candidates[j].ID
	})
}

// normalizeBaseScores divides by the maximum accumulated weight among the
// selected set. A zero maximum leaves all base scores at 0.
func normalizeBaseScores(candidates []Candidate) {
	var maxScore float64
	for i := range candidates {
		if candidates[i].BaseScore > maxScore {
			maxScore = candidates[i].BaseScore
		}
	}
	if maxScore == 0 {
		for i := range candidates {
			candidates[i].BaseScore = 0
		}
		return
	}
	for i := range candidates {
		candidates[i].BaseScore /= maxScore
	}
}
