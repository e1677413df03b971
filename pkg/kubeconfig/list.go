package kubeconfig

import "fmt"

// Names returns the name of every entry of the collection key, in document
// order. An absent collection yields no names.
func (c Config) Names(key string) ([]string, error) {
	entries, err := c.Entries(key)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", key, err)
	}

	names := make([]string, 0, len(entries))
	for i, e := range entries {
		n, err := entryName(key, i, e)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", key, err)
		}
		names = append(names, n)
	}
	return names, nil
}

// ClusterNames returns the names of the clusters entries.
func (c Config) ClusterNames() ([]string, error) { return c.Names(KeyClusters) }

// ContextNames returns the names of the contexts entries.
func (c Config) ContextNames() ([]string, error) { return c.Names(KeyContexts) }

// UserNames returns the names of the users entries.
func (c Config) UserNames() ([]string, error) { return c.Names(KeyUsers) }
