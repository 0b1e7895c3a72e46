// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package storage

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/cartsense/cartsense/internal/recommend"
)

// ErrModelLoad marks any artifact defect found at load time. Callers treat
// it as fatal: a process that fails to load its snapshot must not serve.
var ErrModelLoad = errors.New("model load failure")

// Paths names the three snapshot files of one model version.
type Paths struct {
	Catalog      string `json:"catalog" koanf:"catalog"`
	CoOccurrence string `json:"cooccurrence" koanf:"cooccurrence"`
	Ranking      string `json:"ranking" koanf:"ranking"`
}

// Load reads, validates and assembles a full artifact snapshot.
// All errors wrap ErrModelLoad.
func Load(paths Paths) (recommend.Artifacts, error) {
	var catalog CatalogFile
	if err := readJSON(paths.Catalog, &catalog); err != nil {
		return recommend.Artifacts{}, err
	}

	var cooc CoOccurrenceFile
	if err := readJSON(paths.CoOccurrence, &cooc); err != nil {
		return recommend.Artifacts{}, err
	}

	var ranking RankingFile
	if err := readJSON(paths.Ranking, &ranking); err != nil {
		return recommend.Artifacts{}, err
	}

	return assemble(&catalog, &cooc, &ranking)
}

// readJSON decodes one snapshot file into dst.
func readJSON(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrModelLoad, path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrModelLoad, path, err)
	}
	return nil
}

// assemble validates the decoded files against each other and converts
// them to the engine's in-memory artifact form.
func assemble(catalog *CatalogFile, cooc *CoOccurrenceFile, ranking *RankingFile) (recommend.Artifacts, error) {
	if err := checkVersions(catalog, cooc, ranking); err != nil {
		return recommend.Artifacts{}, err
	}

	items, known, err := buildItems(catalog)
	if err != nil {
		return recommend.Artifacts{}, err
	}

	aliases, err := buildAliases(catalog, known)
	if err != nil {
		return recommend.Artifacts{}, err
	}

	neighbors, err := buildNeighbors(cooc, known)
	if err != nil {
		return recommend.Artifacts{}, err
	}

	segMult, err := buildSegmentMultipliers(ranking, known)
	if err != nil {
		return recommend.Artifacts{}, err
	}

	timeMult, err := buildTimeMultipliers(ranking, known)
	if err != nil {
		return recommend.Artifacts{}, err
	}

	return recommend.Artifacts{
		ModelVersion:       catalog.ModelVersion,
		Items:              items,
		Aliases:            aliases,
		Neighbors:          neighbors,
		SegmentMultipliers: segMult,
		TimeMultipliers:    timeMult,
	}, nil
}

func checkVersions(catalog *CatalogFile, cooc *CoOccurrenceFile, ranking *RankingFile) error {
	if catalog.ModelVersion == "" {
		return fmt.Errorf("%w: catalog has no model_version", ErrModelLoad)
	}
	if cooc.ModelVersion != catalog.ModelVersion {
		return fmt.Errorf("%w: version skew: catalog %q vs cooccurrence %q",
			ErrModelLoad, catalog.ModelVersion, cooc.ModelVersion)
	}
	if ranking.ModelVersion != catalog.ModelVersion {
		return fmt.Errorf("%w: version skew: catalog %q vs ranking %q",
			ErrModelLoad, catalog.ModelVersion, ranking.ModelVersion)
	}
	return nil
}

func buildItems(catalog *CatalogFile) ([]recommend.Item, map[recommend.ItemID]struct{}, error) {
	if len(catalog.Items) == 0 {
		return nil, nil, fmt.Errorf("%w: catalog has no items", ErrModelLoad)
	}

	items := make([]recommend.Item, 0, len(catalog.Items))
	known := make(map[recommend.ItemID]struct{}, len(catalog.Items))

	for _, entry := range catalog.Items {
		id := recommend.ItemID(entry.ID)
		if _, dup := known[id]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate item id %d", ErrModelLoad, entry.ID)
		}
		if entry.Name == "" {
			return nil, nil, fmt.Errorf("%w: item %d has empty name", ErrModelLoad, entry.ID)
		}
		if entry.Popularity < 0 {
			return nil, nil, fmt.Errorf("%w: item %d has negative popularity %f", ErrModelLoad, entry.ID, entry.Popularity)
		}

		known[id] = struct{}{}
		items = append(items, recommend.Item{
			ID:         id,
			Name:       entry.Name,
			Popularity: entry.Popularity,
			Features:   entry.Features,
		})
	}

	return items, known, nil
}

func buildAliases(catalog *CatalogFile, known map[recommend.ItemID]struct{}) (map[string]recommend.ItemID, error) {
	aliases := make(map[string]recommend.ItemID, len(catalog.Aliases))
	for form, rawID := range catalog.Aliases {
		id := recommend.ItemID(rawID)
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%w: alias %q targets unknown item %d", ErrModelLoad, form, rawID)
		}
		norm := recommend.NormalizeName(form)
		if norm == "" {
			return nil, fmt.Errorf("%w: alias for item %d normalizes to empty", ErrModelLoad, rawID)
		}
		aliases[norm] = id
	}
	return aliases, nil
}

func buildNeighbors(cooc *CoOccurrenceFile, known map[recommend.ItemID]struct{}) (map[recommend.ItemID][]recommend.Neighbor, error) {
	neighbors := make(map[recommend.ItemID][]recommend.Neighbor, len(cooc.Neighbors))

	for key, entries := range cooc.Neighbors {
		id, err := parseItemKey(key, known)
		if err != nil {
			return nil, err
		}

		list := make([]recommend.Neighbor, 0, len(entries))
		for _, entry := range entries {
			nid := recommend.ItemID(entry.ID)
			if _, ok := known[nid]; !ok {
				return nil, fmt.Errorf("%w: item %d has unknown neighbor %d", ErrModelLoad, id, entry.ID)
			}
			if entry.Weight < 0 {
				return nil, fmt.Errorf("%w: negative weight %f on edge %d -> %d", ErrModelLoad, entry.Weight, id, entry.ID)
			}
			list = append(list, recommend.Neighbor{ID: nid, Weight: entry.Weight})
		}

		// Serving never trusts file order.
		sort.Slice(list, func(i, j int) bool {
			if list[i].Weight != list[j].Weight {
				return list[i].Weight > list[j].Weight
			}
			return list[i].ID < list[j].ID
		})

		neighbors[id] = list
	}

	return neighbors, nil
}

func buildSegmentMultipliers(ranking *RankingFile, known map[recommend.ItemID]struct{}) (map[recommend.UserSegment]map[recommend.ItemID]float64, error) {
	result := make(map[recommend.UserSegment]map[recommend.ItemID]float64, len(ranking.SegmentMultipliers))

	for name, table := range ranking.SegmentMultipliers {
		segment, err := parseSegment(name)
		if err != nil {
			return nil, err
		}
		converted, err := convertMultiplierTable(table, known, "segment "+name)
		if err != nil {
			return nil, err
		}
		result[segment] = converted
	}

	return result, nil
}

func buildTimeMultipliers(ranking *RankingFile, known map[recommend.ItemID]struct{}) (map[recommend.TimeOfDay]map[recommend.ItemID]float64, error) {
	result := make(map[recommend.TimeOfDay]map[recommend.ItemID]float64, len(ranking.TimeMultipliers))

	for name, table := range ranking.TimeMultipliers {
		daypart, err := parseDaypart(name)
		if err != nil {
			return nil, err
		}
		converted, err := convertMultiplierTable(table, known, "daypart "+name)
		if err != nil {
			return nil, err
		}
		result[daypart] = converted
	}

	return result, nil
}

func convertMultiplierTable(table map[string]float64, known map[recommend.ItemID]struct{}, scope string) (map[recommend.ItemID]float64, error) {
	converted := make(map[recommend.ItemID]float64, len(table))
	for key, mult := range table {
		id, err := parseItemKey(key, known)
		if err != nil {
			return nil, err
		}
		if mult < 0 {
			return nil, fmt.Errorf("%w: negative multiplier %f for item %d in %s", ErrModelLoad, mult, id, scope)
		}
		converted[id] = mult
	}
	return converted, nil
}

func parseItemKey(key string, known map[recommend.ItemID]struct{}) (recommend.ItemID, error) {
	raw, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric item key %q", ErrModelLoad, key)
	}
	id := recommend.ItemID(raw)
	if _, ok := known[id]; !ok {
		return 0, fmt.Errorf("%w: unknown item id %d", ErrModelLoad, raw)
	}
	return id, nil
}

func parseSegment(name string) (recommend.UserSegment, error) {
	switch name {
	case "Premium":
		return recommend.SegmentPremium, nil
	case "Standard":
		return recommend.SegmentStandard, nil
	case "Unknown":
		return recommend.SegmentUnknown, nil
	default:
		return 0, fmt.Errorf("%w: unknown segment %q in ranking artifact", ErrModelLoad, name)
	}
}

func parseDaypart(name string) (recommend.TimeOfDay, error) {
	switch name {
	case "Lunch":
		return recommend.TimeLunch, nil
	case "Dinner":
		return recommend.TimeDinner, nil
	default:
		return 0, fmt.Errorf("%w: unknown daypart %q in ranking artifact", ErrModelLoad, name)
	}
}
