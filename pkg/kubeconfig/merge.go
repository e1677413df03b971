package kubeconfig

import (
	"fmt"

	"github.com/common-fate/clio"
)

// Merge appends the clusters, contexts and users of other whose names are not
// already present in c. Entries already in c are never modified, so the first
// entry seen for a name wins. It reports whether any entry was added.
func (c Config) Merge(other Config) (bool, error) {
	changed := false

	for _, key := range Collections {
		if _, ok := other[key]; !ok {
			continue
		}

		current, err := c.Entries(key)
		if err != nil {
			return false, fmt.Errorf("merge: %w", err)
		}
		existing, err := nameSet(key, current)
		if err != nil {
			return false, fmt.Errorf("merge: %w", err)
		}

		incoming, err := other.Entries(key)
		if err != nil {
			return false, fmt.Errorf("merge: %w", err)
		}

		var added []map[string]any
		for i, entry := range incoming {
			name, err := entryName(key, i, entry)
			if err != nil {
				return false, fmt.Errorf("merge: %w", err)
			}
			if _, ok := existing[name]; ok {
				clio.Debugw("skipping entry already present", "collection", key, "name", name)
				continue
			}
			added = append(added, deepCopy(entry).(map[string]any))
		}

		if len(added) == 0 {
			continue
		}
		c.setEntries(key, append(current, added...))
		clio.Debugw("merged entries", "collection", key, "added", len(added))
		changed = true
	}

	return changed, nil
}

func nameSet(key string, entries []map[string]any) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		name, err := entryName(key, i, entry)
		if err != nil {
			return nil, err
		}
		set[name] = struct{}{}
	}
	return set, nil
}
