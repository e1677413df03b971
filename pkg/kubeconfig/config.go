package kubeconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	KeyClusters       = "clusters"
	KeyContexts       = "contexts"
	KeyUsers          = "users"
	KeyCurrentContext = "current-context"
)

// Collections are the named lists that merge and delete operate on, in the
// order they are processed.
var Collections = []string{KeyClusters, KeyContexts, KeyUsers}

// Config is a decoded kubeconfig document.
//
// Mappings are held as map[string]any and sequences as []any. Scalars stay
// *yaml.Node so their tag, style and text are written back exactly as read,
// and null is nil. Use the accessors below rather than asserting on the map
// directly so that shape mismatches surface as a *ShapeError.
type Config map[string]any

// New creates an empty kubeconfig document.
func New() Config {
	return Config{}
}

// Entries returns the entries of the collection stored under key.
// An absent or null collection has no entries.
func (c Config) Entries(key string) ([]map[string]any, error) {
	v, ok := c[key]
	if !ok || v == nil {
		return nil, nil
	}
	seq, ok := v.([]any)
	if !ok {
		return nil, shapeError(key, "a sequence", v)
	}

	entries := make([]map[string]any, 0, len(seq))
	for i, item := range seq {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, shapeError(fmt.Sprintf("%s[%d]", key, i), "a mapping", item)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (c Config) setEntries(key string, entries []map[string]any) {
	seq := make([]any, 0, len(entries))
	for _, e := range entries {
		seq = append(seq, e)
	}
	c[key] = seq
}

// CurrentContext returns the current-context value, or "" if unset.
func (c Config) CurrentContext() string {
	s, _ := scalarString(c[KeyCurrentContext])
	return s
}

func entryName(key string, i int, entry map[string]any) (string, error) {
	return stringField(fmt.Sprintf("%s[%d].name", key, i), entry["name"])
}

// contextCluster returns the cluster a contexts entry refers to.
func contextCluster(i int, entry map[string]any) (string, error) {
	path := fmt.Sprintf("%s[%d].context", KeyContexts, i)
	ctx, ok := entry["context"].(map[string]any)
	if !ok {
		return "", shapeError(path, "a mapping", entry["context"])
	}
	return stringField(path+".cluster", ctx["cluster"])
}

func stringField(path string, v any) (string, error) {
	s, ok := scalarString(v)
	if !ok {
		return "", shapeError(path, "a string", v)
	}
	return s, nil
}

// scalarString returns v as a string if it is a string scalar.
func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case *yaml.Node:
		if t.Kind == yaml.ScalarNode && t.ShortTag() == "!!str" {
			return t.Value, true
		}
	}
	return "", false
}

// deepCopy copies a decoded value so that the copy shares no mappings,
// sequences or scalar nodes with the original.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = deepCopy(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = deepCopy(val)
		}
		return s
	case *yaml.Node:
		n := *t
		return &n
	default:
		return v
	}
}
