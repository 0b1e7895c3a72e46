// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package recommend

import "testing"

func TestResolveContextTimeOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want TimeOfDay
	}{
		{0, TimeLunch},
		{11, TimeLunch},
		{14, TimeLunch},
		{16, TimeLunch},
		{17, TimeDinner},
		{20, TimeDinner},
		{23, TimeDinner},
		// Unparseable signals default to Dinner, never an error.
		{-1, TimeDinner},
		{24, TimeDinner},
		{99, TimeDinner},
	}

	for _, tt := range tests {
		if got := ResolveContext(tt.hour, "Premium").TimeOfDay; got != tt.want {
			t.Errorf("hour %d resolved to %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestResolveContextSegment(t *testing.T) {
	tests := []struct {
		segment string
		want    UserSegment
	}{
		{"Premium", SegmentPremium},
		{"Standard", SegmentStandard},
		{"Unknown", SegmentUnknown},
		{"premium", SegmentUnknown}, // exact match only
		{"Gold", SegmentUnknown},
		{"", SegmentUnknown},
	}

	for _, tt := range tests {
		if got := ResolveContext(12, tt.segment).UserSegment; got != tt.want {
			t.Errorf("segment %q resolved to %s, want %s", tt.segment, got, tt.want)
		}
	}
}

func TestContextEnumStrings(t *testing.T) {
	if TimeLunch.String() != "Lunch" || TimeDinner.String() != "Dinner" {
		t.Error("unexpected TimeOfDay string values")
	}
	if SegmentPremium.String() != "Premium" || SegmentStandard.String() != "Standard" || SegmentUnknown.String() != "Unknown" {
		t.Error("unexpected UserSegment string values")
	}
}
