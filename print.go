package layout

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes a diagnostic outline of the tree: one line per node, two spaces per nesting level,
// elements as "tag (attr1, attr2)" and text leaves quoted.
func Fprint(w io.Writer, nodes []*Node, indent int) error {
	spaces := strings.Repeat("  ", indent)

	for _, node := range nodes {
		if node.Kind == TextKind {
			if _, err := fmt.Fprint(w, spaces, strconv.Quote(node.Text), "\n"); err != nil {
				return err
			}

			continue
		}

		line := spaces + node.Tag
		if len(node.Attributes) > 0 {
			line += " (" + strings.Join(node.Attributes.Names(), ", ") + ")"
		}

		if _, err := fmt.Fprint(w, line, "\n"); err != nil {
			return err
		}

		if err := Fprint(w, node.Children, indent+1); err != nil {
			return err
		}
	}

	return nil
}

// Print returns the outline written by Fprint.
func Print(nodes []*Node, indent int) string {
	buf := bytes.NewBuffer(nil)
	_ = Fprint(buf, nodes, indent)
	return buf.String()
}
