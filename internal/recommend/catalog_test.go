// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package recommend

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "garlic naan", "garlic naan"},
		{"case folding", "Butter Chicken", "butter chicken"},
		{"leading and trailing space", "  Raita  ", "raita"},
		{"internal whitespace collapse", "Mango \t  Lassi", "mango lassi"},
		{"empty", "", ""},
		{"only whitespace", "   \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.in); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCatalogResolve(t *testing.T) {
	catalog := NewCatalog(
		[]Item{
			{ID: 1, Name: "Butter Chicken", Popularity: 10},
			{ID: 2, Name: "Garlic Naan", Popularity: 8},
		},
		map[string]ItemID{"naan": 2, " BUTTER  chicken ": 1},
	)

	tests := []struct {
		raw    string
		wantID ItemID
		wantOK bool
	}{
		{"Butter Chicken", 1, true},
		{"butter chicken", 1, true},
		{"  garlic   NAAN ", 2, true},
		{"naan", 2, true},
		{"Unobtainium Soup", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		id, ok := catalog.Resolve(tt.raw)
		if ok != tt.wantOK || id != tt.wantID {
			t.Errorf("Resolve(%q) = (%d, %v), want (%d, %v)", tt.raw, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestCatalogNameOf(t *testing.T) {
	catalog := NewCatalog([]Item{{ID: 7, Name: "Raita", Popularity: 1}}, nil)

	if got := catalog.NameOf(7); got != "Raita" {
		t.Errorf("NameOf(7) = %q, want %q", got, "Raita")
	}
	if catalog.Len() != 1 {
		t.Errorf("Len() = %d, want 1", catalog.Len())
	}
}

func TestCatalogPopularityOrder(t *testing.T) {
	catalog := NewCatalog([]Item{
		{ID: 3, Name: "C", Popularity: 5},
		{ID: 1, Name: "A", Popularity: 5},
		{ID: 2, Name: "B", Popularity: 9},
	}, nil)

	want := []ItemID{2, 1, 3} // highest popularity first, ties by ascending ID
	for i, id := range catalog.byPopularity {
		if id != want[i] {
			t.Fatalf("byPopularity = %v, want %v", catalog.byPopularity, want)
		}
	}
}
