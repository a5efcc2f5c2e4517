package layout

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Property is a single CSS declaration.
type Property struct {
	Name  string
	Value string
}

// Style is an ordered set of CSS declarations. Setting an existing property replaces its value in place.
type Style []Property

func (s Style) Get(name string) (string, bool) {
	for _, p := range s {
		if p.Name == name {
			return p.Value, true
		}
	}

	return "", false
}

func (s *Style) Set(name, value string) {
	for i := range *s {
		if (*s)[i].Name == name {
			(*s)[i].Value = value
			return
		}
	}

	*s = append(*s, Property{Name: name, Value: value})
}

// Clone copies the style, an empty non-nil style stays non-nil.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}

	return append(Style{}, s...)
}

// String renders declarations as an inline CSS string: "position: absolute; left: 10px".
func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, p := range s {
		parts = append(parts, p.Name+": "+p.Value)
	}

	return strings.Join(parts, "; ")
}

func (s Style) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, p := range s {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := writePair(buf, p.Name, p.Value); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Attribute is a named attribute value. Map valued attributes (like the computed "style") keep
// their value in Style, which is non-nil for them.
type Attribute struct {
	Name  string
	Value string
	Style Style
}

func (a Attribute) IsMap() bool {
	return a.Style != nil
}

// Attributes is an ordered attribute list with object-assign semantics.
type Attributes []Attribute

func (a Attributes) Get(name string) (Attribute, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr, true
		}
	}

	return Attribute{}, false
}

func (a *Attributes) Set(name, value string) {
	a.put(Attribute{Name: name, Value: value})
}

func (a *Attributes) SetStyle(name string, style Style) {
	if style == nil {
		style = Style{}
	}

	a.put(Attribute{Name: name, Style: style})
}

func (a *Attributes) put(attr Attribute) {
	for i := range *a {
		if (*a)[i].Name == attr.Name {
			(*a)[i] = attr
			return
		}
	}

	*a = append(*a, attr)
}

// Names lists attribute names in order.
func (a Attributes) Names() []string {
	names := make([]string, 0, len(a))
	for _, attr := range a {
		names = append(names, attr.Name)
	}

	return names
}

func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}

	clone := make(Attributes, len(a))
	for i, attr := range a {
		clone[i] = Attribute{Name: attr.Name, Value: attr.Value, Style: attr.Style.Clone()}
	}

	return clone
}

func (a Attributes) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}

		if !attr.IsMap() {
			if err := writePair(buf, attr.Name, attr.Value); err != nil {
				return nil, err
			}

			continue
		}

		key, err := marshalString(attr.Name)
		if err != nil {
			return nil, err
		}

		style, err := attr.Style.MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(style)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writePair(buf *bytes.Buffer, key, value string) error {
	k, err := marshalString(key)
	if err != nil {
		return err
	}

	v, err := marshalString(value)
	if err != nil {
		return err
	}

	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// ParseAttributes reads attributes from the inside of a start tag, for example: src="a.png" alt='logo' hidden.
// Values may be double-quoted, single-quoted or bare; names without a value get an empty one. Character references
// in values are decoded. Parts which can't be read as attributes are skipped.
func ParseAttributes(raw string) Attributes {
	var attrs Attributes

	pos := 0
	for pos < len(raw) {
		if isWhitespace(rune(raw[pos])) || raw[pos] == '/' || raw[pos] == '=' {
			pos++
			continue
		}

		start := pos
		for pos < len(raw) && isAttributeNameChar(raw[pos]) {
			pos++
		}

		name := raw[start:pos]
		if name == "" {
			// quote or other stray symbol
			pos++
			continue
		}

		pos = skipWhitespace(raw, pos)
		if pos >= len(raw) || raw[pos] != '=' {
			attrs.Set(name, "")
			continue
		}

		pos = skipWhitespace(raw, pos+1)

		value := ""
		if pos < len(raw) && (raw[pos] == '"' || raw[pos] == '\'') {
			quote := raw[pos]

			end := strings.IndexByte(raw[pos+1:], quote)
			if end < 0 {
				value, pos = raw[pos+1:], len(raw)
			} else {
				value, pos = raw[pos+1:pos+1+end], pos+end+2
			}
		} else {
			start := pos
			for pos < len(raw) && !isWhitespace(rune(raw[pos])) {
				pos++
			}

			value = raw[start:pos]
		}

		attrs.Set(name, html.UnescapeString(value))
	}

	return attrs
}

func isAttributeNameChar(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '=', '/', '>', '"', '\'', '<':
		return false
	default:
		return true
	}
}

func skipWhitespace(raw string, pos int) int {
	for pos < len(raw) && isWhitespace(rune(raw[pos])) {
		pos++
	}

	return pos
}
