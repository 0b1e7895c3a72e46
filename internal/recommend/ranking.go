// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package recommend

// rankingModel is Stage 2: precise, context-aware rescoring of each
// Stage 1 survivor. Scoring is pure and deterministic with O(1) lookups
// per candidate, so all M candidates fit comfortably inside the latency
// budget.
//
// The reference design multiplies the base score by independent
// per-(segment, item) and per-(daypart, item) factors learned offline.
// The exact formula is a versioned model artifact and may be replaced
// without changing the contract, provided purity and the [0, 1] range
// are preserved.
type rankingModel struct {
	segment map[UserSegment]map[ItemID]float64
	daypart map[TimeOfDay]map[ItemID]float64
}

func newRankingModel(segment map[UserSegment]map[ItemID]float64, daypart map[TimeOfDay]map[ItemID]float64) *rankingModel {
	return &rankingModel{
		segment: segment,
		daypart: daypart,
	}
}

// Score returns the Stage 2 rank score in [0, 1] for one candidate.
// Absence of a learned weight never zeroes a score: unseen
// (context, item) pairs multiply by 1.0.
func (m *rankingModel) Score(id ItemID, baseScore float64, ctx Context) float64 {
	score := baseScore
	score *= m.multiplier(m.segment[ctx.UserSegment], id)
	score *= m.multiplier(m.daypart[ctx.TimeOfDay], id)
	return clamp01(score)
}

func (m *rankingModel) multiplier(table map[ItemID]float64, id ItemID) float64 {
	if table == nil {
		return 1.0
	}
	mult, ok := table[id]
	if !ok {
		return 1.0
	}
	return mult
}

// clamp01 bounds a score to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
