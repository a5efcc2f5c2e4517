package layout

import (
	"bytes"
	"io"

	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type HTMLOption func(*HTMLRenderer)

// WithHTMLTagMap sets tags used in the rendered HTML.
func WithHTMLTagMap(tags TagMap) HTMLOption {
	return func(r *HTMLRenderer) {
		r.tags = tags
	}
}

// WithMinify removes unnecessary whitespace and quotes from the rendered HTML.
func WithMinify(enabled bool) HTMLOption {
	return func(r *HTMLRenderer) {
		r.minifier = nil
		if enabled {
			r.minifier = minify.New()
			r.minifier.AddFunc("text/html", minhtml.Minify)
		}
	}
}

// HTMLRenderer writes tree as HTML.
type HTMLRenderer struct {
	tags     TagMap
	minifier *minify.M
}

func NewHTMLRenderer(opts ...HTMLOption) *HTMLRenderer {
	r := &HTMLRenderer{tags: DefaultTagMap()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RenderHTML renders nodes with the default renderer.
func RenderHTML(nodes []*Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := NewHTMLRenderer().Render(buf, nodes); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (r *HTMLRenderer) Render(w io.Writer, nodes []*Node) error {
	buf := bytes.NewBuffer(nil)
	for _, node := range nodes {
		if err := html.Render(buf, r.convert(node)); err != nil {
			return err
		}
	}

	if r.minifier == nil {
		_, err := buf.WriteTo(w)
		return err
	}

	out, err := r.minifier.Bytes("text/html", buf.Bytes())
	if err != nil {
		// if minification fails, fall back to original content
		out = buf.Bytes()
	}

	_, err = w.Write(out)
	return err
}

func (r *HTMLRenderer) convert(node *Node) *html.Node {
	if node.Kind == TextKind {
		return &html.Node{Type: html.TextNode, Data: node.Text}
	}

	tag := r.tags.Lookup(node.Tag)

	element := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for _, attr := range node.Attributes {
		value := attr.Value
		if attr.IsMap() {
			value = attr.Style.String()
		}

		element.Attr = append(element.Attr, html.Attribute{Key: attr.Name, Val: value})
	}

	// html.Render refuses void elements with children
	if isVoid(tag) {
		return element
	}

	for _, child := range node.Children {
		element.AppendChild(r.convert(child))
	}

	return element
}
