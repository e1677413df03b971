package kubeconfig

import (
	"fmt"

	"github.com/common-fate/clio"
)

// DeleteCluster removes the cluster called name together with every context
// that points at it. Users called name are removed too, and current-context
// is cleared if it equals name.
//
// It reports a change only when a clusters entry was removed; contexts or
// users dropped on their own do not count.
func (c Config) DeleteCluster(name string) (bool, error) {
	removed, err := c.removeWhere(KeyClusters, func(i int, e map[string]any) (bool, error) {
		n, err := entryName(KeyClusters, i, e)
		return n == name, err
	})
	if err != nil {
		return false, fmt.Errorf("delete cluster %q: %w", name, err)
	}

	contexts, err := c.removeWhere(KeyContexts, func(i int, e map[string]any) (bool, error) {
		cluster, err := contextCluster(i, e)
		return cluster == name, err
	})
	if err != nil {
		return false, fmt.Errorf("delete cluster %q: %w", name, err)
	}

	// users are matched on the cluster name, not on the contexts removed above
	users, err := c.removeWhere(KeyUsers, func(i int, e map[string]any) (bool, error) {
		n, err := entryName(KeyUsers, i, e)
		return n == name, err
	})
	if err != nil {
		return false, fmt.Errorf("delete cluster %q: %w", name, err)
	}

	if cur, ok := scalarString(c[KeyCurrentContext]); ok && cur == name {
		c[KeyCurrentContext] = ""
	}

	clio.Debugw("deleted cluster", "name", name, "clusters", removed, "contexts", contexts, "users", users)
	return removed > 0, nil
}

// DeleteUser removes every user called username.
func (c Config) DeleteUser(username string) (bool, error) {
	removed, err := c.removeWhere(KeyUsers, func(i int, e map[string]any) (bool, error) {
		n, err := entryName(KeyUsers, i, e)
		return n == username, err
	})
	if err != nil {
		return false, fmt.Errorf("delete user %q: %w", username, err)
	}

	clio.Debugw("deleted user", "name", username, "users", removed)
	return removed > 0, nil
}

// removeWhere drops the entries of the collection key that match and returns
// how many were dropped. The collection is left as is when nothing matched.
func (c Config) removeWhere(key string, match func(i int, e map[string]any) (bool, error)) (int, error) {
	entries, err := c.Entries(key)
	if err != nil {
		return 0, err
	}

	kept := make([]map[string]any, 0, len(entries))
	for i, e := range entries {
		drop, err := match(i, e)
		if err != nil {
			return 0, err
		}
		if !drop {
			kept = append(kept, e)
		}
	}

	removed := len(entries) - len(kept)
	if removed > 0 {
		c.setEntries(key, kept)
	}
	return removed, nil
}
