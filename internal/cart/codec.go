package cart

import (
	"encoding/json"

	applog "estore/internal/log"
)

// The persisted value is a JSON array of entries, each the product snapshot
// fields inlined next to "quantity" — the same shape the web client used to
// keep under its "cart" storage key.

func encodeEntries(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}

// loadEntries fails soft: any read or decode problem yields an empty cart so
// a corrupted or stale payload never breaks session start.
func loadEntries(p Persistence, key string) []Entry {
	raw, ok, err := p.Load(key)
	if err != nil {
		applog.Error(nil, "cart.persist.load", err, map[string]any{"key": key})
		return nil
	}
	if !ok {
		return nil
	}
	var decoded []Entry
	if err := json.Unmarshal(raw, &decoded); err != nil {
		applog.Security(nil, "cart.persist.malformed", map[string]any{"key": key})
		return nil
	}
	// Old payloads may violate invariants; drop bad lines instead of failing.
	seen := make(map[string]bool, len(decoded))
	entries := decoded[:0:0]
	for _, e := range decoded {
		if e.ID == "" || e.Quantity <= 0 || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		entries = append(entries, e)
	}
	return entries
}
