package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PlacedElement is a fragment of markup positioned by the user on the editor canvas. JSON field names
// follow the format the editor stores layouts in.
type PlacedElement struct {
	Markup          string            `json:"html"`
	ID              string            `json:"id"`
	X               string            `json:"x"`
	Y               string            `json:"y"`
	Kind            string            `json:"type"`
	StyleOverrides  map[string]string `json:"styles,omitempty"`
	ExtraAttributes map[string]any    `json:"attributes,omitempty"`
	Width           string            `json:"width,omitempty"`
	Height          string            `json:"height,omitempty"`
	Position        string            `json:"position,omitempty"`
}

// Normalize turns a stored element record into PlacedElement with every optional field set to its default.
//
// The record may be a decoded JSON object (map[string]any), PlacedElement or *PlacedElement. Anything else,
// including nil, gives an element made of defaults only. Empty values are treated as absent.
func Normalize(raw any) PlacedElement {
	switch record := raw.(type) {
	case PlacedElement:
		return record.normalize()
	case *PlacedElement:
		if record == nil {
			return PlacedElement{}.normalize()
		}

		return record.normalize()
	case map[string]any:
		return fromRecord(record).normalize()
	default:
		return PlacedElement{}.normalize()
	}
}

// NormalizeBatch normalizes every record, keeping their order.
func NormalizeBatch(records []any) []PlacedElement {
	elements := make([]PlacedElement, 0, len(records))
	for _, record := range records {
		elements = append(elements, Normalize(record))
	}

	return elements
}

// DecodeLayout reads stored layout, a JSON array of element records, and normalizes its elements.
func DecodeLayout(data []byte) ([]PlacedElement, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("unable to decode layout: %w", err)
	}

	return NormalizeBatch(records), nil
}

func (e PlacedElement) normalize() PlacedElement {
	styles := make(map[string]string, len(e.StyleOverrides))
	for k, v := range e.StyleOverrides {
		styles[k] = v
	}

	attrs := make(map[string]any, len(e.ExtraAttributes))
	for k, v := range e.ExtraAttributes {
		attrs[k] = clone(v)
	}

	return PlacedElement{
		Markup:          e.Markup,
		ID:              e.ID,
		X:               fallback(e.X, "0"),
		Y:               fallback(e.Y, "0"),
		Kind:            fallback(e.Kind, "div"),
		StyleOverrides:  styles,
		ExtraAttributes: attrs,
		Width:           fallback(styles["width"], e.Width),
		Height:          fallback(styles["height"], e.Height),
		Position:        fallback(styles["position"], e.Position, "absolute"),
	}
}

// fromRecord reads element from a decoded JSON object. Size and position are taken from the
// stored styles only, see normalize.
func fromRecord(record map[string]any) PlacedElement {
	element := PlacedElement{
		Markup: stringify(record["html"]),
		ID:     stringify(record["id"]),
		X:      stringify(record["x"]),
		Y:      stringify(record["y"]),
		Kind:   stringify(record["type"]),
	}

	switch styles := record["styles"].(type) {
	case map[string]any:
		element.StyleOverrides = make(map[string]string, len(styles))
		for k, v := range styles {
			element.StyleOverrides[k] = stringify(v)
		}
	case map[string]string:
		element.StyleOverrides = styles
	}

	switch attrs := record["attributes"].(type) {
	case map[string]any:
		element.ExtraAttributes = attrs
	case map[string]string:
		element.ExtraAttributes = make(map[string]any, len(attrs))
		for k, v := range attrs {
			element.ExtraAttributes[k] = v
		}
	}

	return element
}

// clone makes a deep copy of decoded JSON value
func clone(v any) any {
	switch value := v.(type) {
	case map[string]any:
		c := make(map[string]any, len(value))
		for k, item := range value {
			c[k] = clone(item)
		}

		return c
	case map[string]string:
		c := make(map[string]string, len(value))
		for k, item := range value {
			c[k] = item
		}

		return c
	case []any:
		c := make([]any, len(value))
		for i, item := range value {
			c[i] = clone(item)
		}

		return c
	default:
		return v
	}
}
