package kubeconfig

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Unmarshal decodes a kubeconfig document from a byte slice into c.
// An empty input leaves c empty.
func (c Config) Unmarshal(b []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("unmarshal yaml: %w: %w", ErrParse, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil
	}
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("unmarshal yaml: %w: line %d: top level is not a mapping", ErrParse, root.Line)
	}

	v, err := fromNode(root)
	if err != nil {
		return fmt.Errorf("unmarshal yaml: %w: %w", ErrParse, err)
	}
	for k, val := range v.(map[string]any) {
		c[k] = val
	}
	return nil
}

// fromNode converts a parsed node into the values held by Config.
// Aliases are expanded and scalars are copied without their anchor and position.
func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key.Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := fromNode(item)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		scalar := *n
		scalar.Anchor = ""
		scalar.Line, scalar.Column = 0, 0
		return &scalar, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported node", n.Line)
	}
}

// Marshal encodes the document as block style YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any(c)); err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return buf.Bytes(), nil
}
