package layout

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type JSXOption func(*JSXRenderer)

// WithTagMap sets tags used in the rendered markup.
func WithTagMap(tags TagMap) JSXOption {
	return func(r *JSXRenderer) {
		r.tags = tags
	}
}

// WithReactProps renders "class" and "for" attributes as "className" and "htmlFor".
func WithReactProps(enabled bool) JSXOption {
	return func(r *JSXRenderer) {
		r.reactProps = enabled
	}
}

// WithCamelCaseStyles renders CSS property names in camel case ("background-color" as "backgroundColor").
func WithCamelCaseStyles(enabled bool) JSXOption {
	return func(r *JSXRenderer) {
		r.camelCase = enabled
	}
}

// JSXRenderer writes tree as component (JSX) markup.
type JSXRenderer struct {
	tags       TagMap
	reactProps bool
	camelCase  bool
}

func NewJSXRenderer(opts ...JSXOption) *JSXRenderer {
	r := &JSXRenderer{tags: DefaultTagMap()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RenderJSX renders nodes with the default renderer.
func RenderJSX(nodes []*Node, indent int) string {
	buf := bytes.NewBuffer(nil)
	_ = NewJSXRenderer().Render(buf, nodes, indent)
	return buf.String()
}

// Render writes every node on its own line(s), indented by two spaces per level starting at "indent".
func (r *JSXRenderer) Render(w io.Writer, nodes []*Node, indent int) error {
	for _, node := range nodes {
		if err := r.render(w, node, indent); err != nil {
			return err
		}
	}

	return nil
}

func (r *JSXRenderer) render(w io.Writer, node *Node, indent int) error {
	spaces := strings.Repeat("  ", indent)

	if node.Kind == TextKind {
		text, err := marshalString(node.Text)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(w, spaces, string(text), "\n")
		return err
	}

	tag := r.tags.Lookup(node.Tag)

	attrs, err := r.attributes(node.Attributes)
	if err != nil {
		return err
	}

	if len(node.Children) == 0 {
		_, err := fmt.Fprint(w, spaces, "<", tag, attrs, " />\n")
		return err
	}

	if _, err := fmt.Fprint(w, spaces, "<", tag, attrs, ">\n"); err != nil {
		return err
	}

	if err := r.Render(w, node.Children, indent+1); err != nil {
		return err
	}

	_, err = fmt.Fprint(w, spaces, "</", tag, ">\n")
	return err
}

func (r *JSXRenderer) attributes(attrs Attributes) (string, error) {
	var out strings.Builder

	for _, attr := range attrs {
		name := r.prop(attr.Name)

		switch {
		case attr.IsMap():
			style := attr.Style
			if r.camelCase {
				style = make(Style, 0, len(attr.Style))
				for _, p := range attr.Style {
					style = append(style, Property{Name: camelCase(p.Name), Value: p.Value})
				}
			}

			literal, err := style.MarshalJSON()
			if err != nil {
				return "", err
			}

			fmt.Fprintf(&out, " %s={%s}", name, literal)
		case strings.Contains(attr.Value, `"`):
			// JSX string attributes have no escapes, use expression instead
			literal, err := marshalString(attr.Value)
			if err != nil {
				return "", err
			}

			fmt.Fprintf(&out, " %s={%s}", name, literal)
		default:
			fmt.Fprintf(&out, ` %s="%s"`, name, attr.Value)
		}
	}

	return out.String(), nil
}

func (r *JSXRenderer) prop(name string) string {
	if !r.reactProps {
		return name
	}

	switch name {
	case "class":
		return "className"
	case "for":
		return "htmlFor"
	default:
		return name
	}
}

// camelCase converts CSS property name to its DOM style name: "background-color" becomes "backgroundColor",
// vendor prefixed "-webkit-transition" becomes "WebkitTransition". Custom properties (--name) are kept.
func camelCase(name string) string {
	if strings.HasPrefix(name, "--") || !strings.Contains(name, "-") {
		return name
	}

	title := cases.Title(language.Und, cases.NoLower)

	parts := strings.Split(name, "-")
	for i := 1; i < len(parts); i++ {
		parts[i] = title.String(parts[i])
	}

	return strings.Join(parts, "")
}
