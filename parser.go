package layout

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parser builds layout nodes from markup fragments. It is not a HTML5 parser: there are no implicit
// closing rules except for void elements, but open and close tags are balanced using a stack of open
// elements, so nested elements with the same name are matched correctly.
type Parser struct {
	tokens   *Tokenizer
	elements int
}

// Parse reads markup fragment and returns its nodes.
//
// If the fragment does not contain any element, the result is its text with all tag-like markup
// removed, or nothing if the text is blank.
func Parse(markup string) ([]*Node, error) {
	parser := NewParser(strings.NewReader(markup))

	nodes, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	if parser.elements == 0 {
		return plainText(stripTags(markup)), nil
	}

	return nodes, nil
}

// ParseFragment works like Parse, but never fails: a fragment which can't be parsed is returned as
// plain text with tag-like markup removed.
func ParseFragment(markup string) []*Node {
	nodes, err := Parse(markup)
	if err != nil {
		return plainText(stripTags(markup))
	}

	return nodes
}

func NewParser(r io.RuneScanner) *Parser {
	return &Parser{tokens: NewTokenizer(r)}
}

func (p *Parser) Parse() ([]*Node, error) {
	children, _, err := p.content(nil)
	return children, err
}

// content collects children of the innermost element in "open" (or top level nodes if "open" is empty)
// until this element is closed. When the element is closed implicitly by an end tag of one of its
// ancestors, the name of that end tag is returned, so the ancestors can close themselves too.
func (p *Parser) content(open []string) (children []*Node, closing string, err error) {
	var text strings.Builder

	flush := func() {
		if value := strings.TrimSpace(html.UnescapeString(text.String())); value != "" {
			children = append(children, NewText(value))
		}

		text.Reset()
	}

	// add whatever text is hanging before return
	defer flush()

	for {
		t, err := p.tokens.Token()
		if err == io.EOF {
			// elements which are still open are closed by the end of the input
			return children, "", nil
		}

		if err != nil {
			return nil, "", err
		}

		switch token := t.(type) {
		case Text:
			// merge consequent text tokens together
			text.WriteString(string(token))
		case Comment:
			continue
		case StartTag:
			flush()

			node, closed, err := p.element(token, open)
			if err != nil {
				return nil, "", err
			}

			children = append(children, node)

			if closed == "" {
				continue
			}

			if done, ok := closes(open, closed); ok {
				if done {
					return children, "", nil
				}

				return children, closed, nil
			}
		case EndTag:
			done, ok := closes(open, token.Name)
			if !ok {
				// end tag without matching start tag
				continue
			}

			if done {
				return children, "", nil
			}

			return children, token.Name, nil
		}
	}
}

// element reads element which starts with the given tag
func (p *Parser) element(tag StartTag, open []string) (*Node, string, error) {
	p.elements++

	node := &Node{Kind: ElementKind, Tag: tag.Name, Attributes: tag.Attributes}
	if tag.SelfClosing || isVoid(tag.Name) {
		return node, "", nil
	}

	children, closed, err := p.content(append(open[:len(open):len(open)], tag.Name))
	if err != nil {
		return nil, "", err
	}

	if len(children) > 0 {
		node.Children = children
	}

	return node, closed, nil
}

// closes finds which open element is closed by end tag "name". It returns ok=false if there is no such element,
// and done=true if the closed element is the innermost one.
func closes(open []string, name string) (done bool, ok bool) {
	for i := len(open) - 1; i >= 0; i-- {
		if open[i] == name {
			return i == len(open)-1, true
		}
	}

	return false, false
}

// isVoid checks if element can't have any content
func isVoid(name string) bool {
	switch atom.Lookup([]byte(name)) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img, atom.Input, atom.Link, atom.Meta, atom.Param, atom.Source, atom.Track, atom.Wbr:
		return true
	default:
		return false
	}
}
