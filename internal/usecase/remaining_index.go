package usecase

import (
	"strings"

	"nurseryhub/internal/domain/entities"
)

// RemainingEntry is one packable line in a RemainingIndex. Line points into
// the estimate's in-memory items slice so in-request fulfilled updates are
// visible to later lookups within the same request; Index addresses the line
// for targeted persistence.
type RemainingEntry struct {
	Remaining float64
	Line      *entities.EstimateLine
	Index     int
}

// RemainingIndex looks up an estimate line by exact item id or by
// case-insensitive name. It is rebuilt from a fresh estimate read on every
// packaging request and never cached: estimate state can change between
// requests.
type RemainingIndex map[string]*RemainingEntry

// BuildRemainingIndex indexes the estimate's lines by item id (exact) and by
// lowercased trimmed name. Lines with neither id nor name are excluded.
func BuildRemainingIndex(estimate *entities.Estimate) RemainingIndex {
	index := make(RemainingIndex, len(estimate.Items)*2)

	for i := range estimate.Items {
		line := &estimate.Items[i]

		entry := &RemainingEntry{
			Remaining: line.Remaining(),
			Line:      line,
			Index:     i,
		}

		itemID := strings.TrimSpace(line.ItemID)
		name := strings.TrimSpace(line.Name)
		if itemID == "" && name == "" {
			continue
		}

		if itemID != "" {
			index[itemID] = entry
		}
		if name != "" {
			index[strings.ToLower(name)] = entry
		}
	}
	return index
}

// Lookup resolves a requested key by exact match first, then by lowercased
// fallback so callers can pack by item name regardless of casing.
func (ix RemainingIndex) Lookup(key string) (*RemainingEntry, bool) {
	if e, ok := ix[key]; ok {
		return e, true
	}
	e, ok := ix[strings.ToLower(key)]
	return e, ok
}
