package dataset

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// readYAML accepts either a top-level list of mappings or a mapping with a
// "points" list.
func readYAML(r io.Reader) ([]row, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml: %w", err)
	}

	var rows []row
	var err error
	switch root := documentRoot(&doc); {
	case root == nil:
		return nil, nil
	case root.Kind == yaml.SequenceNode:
		err = root.Decode(&rows)
	case root.Kind == yaml.MappingNode:
		var wrapped struct {
			Points []row `yaml:"points"`
		}
		err = root.Decode(&wrapped)
		rows = wrapped.Points
	default:
		return nil, fmt.Errorf("yaml: expected a list of rows, got %s", root.Tag)
	}
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return rows, nil
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		return doc.Content[0]
	}
	return doc
}
