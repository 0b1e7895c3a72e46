// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package recommend

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func testArtifacts() Artifacts {
	return Artifacts{
		ModelVersion: "2026-08-01",
		Items: []Item{
			{ID: 1, Name: "Butter Chicken", Popularity: 10},
			{ID: 2, Name: "Garlic Naan", Popularity: 9},
			{ID: 3, Name: "Paneer Tikka", Popularity: 7},
			{ID: 4, Name: "Gulab Jamun", Popularity: 5},
			{ID: 5, Name: "Mango Lassi", Popularity: 4},
			{ID: 6, Name: "Raita", Popularity: 2},
		},
		Aliases: map[string]ItemID{"naan": 2},
		Neighbors: map[ItemID][]Neighbor{
			1: {{ID: 3, Weight: 8}, {ID: 5, Weight: 5}, {ID: 6, Weight: 3}},
			2: {{ID: 1, Weight: 9}, {ID: 3, Weight: 4}, {ID: 4, Weight: 2}},
			3: {{ID: 1, Weight: 8}, {ID: 2, Weight: 4}},
		},
		SegmentMultipliers: map[UserSegment]map[ItemID]float64{
			SegmentPremium: {4: 1.5},
		},
		TimeMultipliers: map[TimeOfDay]map[ItemID]float64{
			TimeLunch:  {5: 1.4},
			TimeDinner: {4: 1.3},
		},
	}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig(), testArtifacts(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func TestNewEngineLifecycle(t *testing.T) {
	engine := testEngine(t)

	if !engine.Ready() {
		t.Error("engine not Ready after construction")
	}
	if engine.ModelVersion() != "2026-08-01" {
		t.Errorf("model version = %q", engine.ModelVersion())
	}

	status := engine.GetStatus()
	if status.State != "ready" {
		t.Errorf("status state = %q, want ready", status.State)
	}
	if status.ItemCount != 6 {
		t.Errorf("status item count = %d, want 6", status.ItemCount)
	}
}

func TestNewEngineRejectsBadInputs(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		art  Artifacts
	}{
		{
			name: "missing model version",
			cfg:  DefaultConfig(),
			art:  Artifacts{Items: []Item{{ID: 1, Name: "A"}}},
		},
		{
			name: "invalid config",
			cfg:  &Config{PoolSize: 1, DefaultK: 5, MaxK: 20},
			art:  testArtifacts(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(tt.cfg, tt.art, zerolog.Nop()); err == nil {
				t.Error("expected construction error")
			}
		})
	}
}

func TestRecommendNeverReturnsCartItems(t *testing.T) {
	engine := testEngine(t)

	result := engine.Recommend([]string{"Butter Chicken", "naan"}, "Premium", 12)
	for _, rec := range result.Recommendations {
		if rec.Item == "Butter Chicken" || rec.Item == "Garlic Naan" {
			t.Errorf("cart item %q returned as recommendation", rec.Item)
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	engine := testEngine(t)

	first := engine.Recommend([]string{"Butter Chicken", "Garlic Naan"}, "Premium", 19)
	for i := 0; i < 50; i++ {
		again := engine.Recommend([]string{"Butter Chicken", "Garlic Naan"}, "Premium", 19)
		if !reflect.DeepEqual(first.Recommendations, again.Recommendations) {
			t.Fatalf("ranked output varied across identical requests:\n%+v\n%+v",
				first.Recommendations, again.Recommendations)
		}
	}
}

func TestRecommendLengthBound(t *testing.T) {
	engine := testEngine(t)

	result := engine.Recommend([]string{"Butter Chicken", "Garlic Naan", "Paneer Tikka"}, "Premium", 12)
	if len(result.Recommendations) > engine.GetConfig().DefaultK {
		t.Errorf("returned %d recommendations, limit %d",
			len(result.Recommendations), engine.GetConfig().DefaultK)
	}
	if len(result.Recommendations) == 0 {
		t.Error("expected at least one recommendation")
	}
}

func TestRecommendFallbackPaths(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name string
		cart []string
	}{
		{"empty cart", nil},
		{"all unknown cart", []string{"Unobtainium Soup", "Phantom Pie"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Recommend(tt.cart, "Premium", 12)
			if !result.Fallback {
				t.Error("expected popularity fallback")
			}
			if len(result.Recommendations) == 0 {
				t.Error("fallback returned no recommendations")
			}
			// Highest-popularity item leads the fallback list.
			if result.Recommendations[0].Item != "Butter Chicken" {
				t.Errorf("fallback top = %q, want Butter Chicken", result.Recommendations[0].Item)
			}
		})
	}
}

func TestRecommendReportsUnresolved(t *testing.T) {
	engine := testEngine(t)

	result := engine.Recommend([]string{"Butter Chicken", "Phantom Pie"}, "Premium", 12)
	if result.Fallback {
		t.Error("partial resolution must not trigger fallback")
	}
	if len(result.Unresolved) != 1 || result.Unresolved[0] != "Phantom Pie" {
		t.Errorf("unresolved = %v, want [Phantom Pie]", result.Unresolved)
	}
}

func TestRecommendContextSensitivity(t *testing.T) {
	engine := testEngine(t)

	lunch := engine.Recommend([]string{"Butter Chicken"}, "Standard", 14)
	dinner := engine.Recommend([]string{"Butter Chicken"}, "Standard", 20)

	if lunch.Context.TimeOfDay != TimeLunch {
		t.Errorf("hour 14 resolved to %s", lunch.Context.TimeOfDay)
	}
	if dinner.Context.TimeOfDay != TimeDinner {
		t.Errorf("hour 20 resolved to %s", dinner.Context.TimeOfDay)
	}

	// Mango Lassi carries a Lunch boost, so its score must differ
	// between the two dayparts.
	lunchScore, dinnerScore := -1.0, -1.0
	for _, rec := range lunch.Recommendations {
		if rec.Item == "Mango Lassi" {
			lunchScore = rec.Score
		}
	}
	for _, rec := range dinner.Recommendations {
		if rec.Item == "Mango Lassi" {
			dinnerScore = rec.Score
		}
	}
	if lunchScore < 0 || dinnerScore < 0 {
		t.Fatal("Mango Lassi missing from recommendations")
	}
	if lunchScore <= dinnerScore {
		t.Errorf("lunch boost missing: lunch %f <= dinner %f", lunchScore, dinnerScore)
	}
}

func TestRecommendSegmentSensitivity(t *testing.T) {
	engine := testEngine(t)

	premium := engine.Recommend([]string{"Garlic Naan"}, "Premium", 12)
	standard := engine.Recommend([]string{"Garlic Naan"}, "Standard", 12)

	premiumScore, standardScore := -1.0, -1.0
	for _, rec := range premium.Recommendations {
		if rec.Item == "Gulab Jamun" {
			premiumScore = rec.Score
		}
	}
	for _, rec := range standard.Recommendations {
		if rec.Item == "Gulab Jamun" {
			standardScore = rec.Score
		}
	}
	if premiumScore < 0 || standardScore < 0 {
		t.Fatal("Gulab Jamun missing from recommendations")
	}
	if premiumScore <= standardScore {
		t.Errorf("premium boost missing: %f <= %f", premiumScore, standardScore)
	}
}

func TestRecommendInvalidSignalsDegrade(t *testing.T) {
	engine := testEngine(t)

	result := engine.Recommend([]string{"Butter Chicken"}, "Gold", -3)
	if result.Context.UserSegment != SegmentUnknown {
		t.Errorf("segment = %s, want Unknown", result.Context.UserSegment)
	}
	if result.Context.TimeOfDay != TimeDinner {
		t.Errorf("invalid hour resolved to %s, want Dinner", result.Context.TimeOfDay)
	}
	if len(result.Recommendations) == 0 {
		t.Error("degraded signals must still produce recommendations")
	}
}

func TestRecommendCountsRequests(t *testing.T) {
	engine := testEngine(t)

	engine.Recommend([]string{"Butter Chicken"}, "Premium", 12)
	engine.Recommend(nil, "Premium", 12)

	status := engine.GetStatus()
	if status.RequestCount != 2 {
		t.Errorf("request count = %d, want 2", status.RequestCount)
	}
	if status.FallbackCount != 1 {
		t.Errorf("fallback count = %d, want 1", status.FallbackCount)
	}
}
