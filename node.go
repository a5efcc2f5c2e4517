package layout

import (
	"bytes"
	"encoding/json"
)

type Kind int

const (
	TextKind Kind = iota
	ElementKind
)

// Node is one entry of the layout tree: either an element with a tag, attributes and children
// or a text leaf.
type Node struct {
	Kind       Kind
	Tag        string
	Text       string
	Attributes Attributes
	Children   []*Node
}

func NewText(text string) *Node {
	return &Node{Kind: TextKind, Text: text}
}

func NewElement(tag string, attrs Attributes, children ...*Node) *Node {
	node := &Node{Kind: ElementKind, Tag: tag, Attributes: attrs}
	if len(children) > 0 {
		node.Children = children
	}

	return node
}

// MarshalJSON writes text leaves as plain strings and elements as {"tag", "attributes", "children"},
// leaving out attributes and children when they are empty.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.Kind == TextKind {
		return marshalString(n.Text)
	}

	buf := bytes.NewBufferString(`{"tag":`)

	tag, err := marshalString(n.Tag)
	if err != nil {
		return nil, err
	}

	buf.Write(tag)

	if len(n.Attributes) > 0 {
		attrs, err := n.Attributes.MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.WriteString(`,"attributes":`)
		buf.Write(attrs)
	}

	if len(n.Children) > 0 {
		buf.WriteString(`,"children":[`)
		for i, child := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}

			data, err := child.MarshalJSON()
			if err != nil {
				return nil, err
			}

			buf.Write(data)
		}

		buf.WriteByte(']')
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalString encodes a JSON string without escaping <, > and &, so the result can be embedded in markup as is
func marshalString(s string) ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
