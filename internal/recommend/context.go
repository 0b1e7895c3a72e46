// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package recommend

// dinnerCutoverHour is the boundary of the lunch/dinner split.
// Hours below it resolve to Lunch, everything else to Dinner.
const dinnerCutoverHour = 17

// ResolveContext maps raw request signals to a canonical Context.
// It is a pure total function: out-of-range hours resolve to Dinner and
// unrecognized segment labels to SegmentUnknown, never to an error.
func ResolveContext(hour int, segment string) Context {
	return Context{
		TimeOfDay:   resolveTimeOfDay(hour),
		UserSegment: resolveSegment(segment),
	}
}

func resolveTimeOfDay(hour int) TimeOfDay {
	if hour >= 0 && hour < dinnerCutoverHour {
		return TimeLunch
	}
	return TimeDinner
}

func resolveSegment(segment string) UserSegment {
	switch segment {
	case "Premium":
		return SegmentPremium
	case "Standard":
		return SegmentStandard
	default:
		return SegmentUnknown
	}
}
