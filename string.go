package layout

import "strings"

// String returns text content of nodes, text leaves of different elements are separated by a space.
func String(nodes []*Node) string {
	var parts []string
	for _, node := range nodes {
		if node.Kind == TextKind {
			parts = append(parts, node.Text)
			continue
		}

		if text := String(node.Children); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " ")
}
