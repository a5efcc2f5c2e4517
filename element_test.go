package layout_test

import (
	"encoding/json"
	"testing"

	"github.com/dragalert/go-layout"
	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	defaults := layout.PlacedElement{
		X:               "0",
		Y:               "0",
		Kind:            "div",
		StyleOverrides:  map[string]string{},
		ExtraAttributes: map[string]any{},
		Position:        "absolute",
	}

	tt := []struct {
		name   string
		input  any
		output layout.PlacedElement
	}{
		{
			name:   "nil",
			output: defaults,
		},
		{
			name:   "nil pointer",
			input:  (*layout.PlacedElement)(nil),
			output: defaults,
		},
		{
			name:   "unsupported value",
			input:  42,
			output: defaults,
		},
		{
			name:  "record",
			input: map[string]any{"id": "e1", "html": "<b>x</b>", "x": "5", "y": "", "type": "span"},
			output: layout.PlacedElement{
				ID:              "e1",
				Markup:          "<b>x</b>",
				X:               "5",
				Y:               "0",
				Kind:            "span",
				StyleOverrides:  map[string]string{},
				ExtraAttributes: map[string]any{},
				Position:        "absolute",
			},
		},
		{
			name: "size and position from styles",
			input: map[string]any{
				"id":     "e2",
				"styles": map[string]any{"width": "100px", "height": "2em", "position": "fixed", "color": "red"},
			},
			output: layout.PlacedElement{
				ID:              "e2",
				X:               "0",
				Y:               "0",
				Kind:            "div",
				StyleOverrides:  map[string]string{"width": "100px", "height": "2em", "position": "fixed", "color": "red"},
				ExtraAttributes: map[string]any{},
				Width:           "100px",
				Height:          "2em",
				Position:        "fixed",
			},
		},
		{
			name:   "size outside of styles is ignored in records",
			input:  map[string]any{"width": "10px", "position": "relative"},
			output: defaults,
		},
		{
			name: "struct",
			input: layout.PlacedElement{
				ID:              "e3",
				Kind:            "p",
				ExtraAttributes: map[string]any{"class": "lead"},
				Width:           "50%",
			},
			output: layout.PlacedElement{
				ID:              "e3",
				X:               "0",
				Y:               "0",
				Kind:            "p",
				StyleOverrides:  map[string]string{},
				ExtraAttributes: map[string]any{"class": "lead"},
				Width:           "50%",
				Position:        "absolute",
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := layout.Normalize(tc.input)

			if diff := cmp.Diff(tc.output, got); diff != "" {
				t.Errorf("Element does not match (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(got, layout.Normalize(got)); diff != "" {
				t.Errorf("Normalize is not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestNormalize_CopiesMaps(t *testing.T) {
	styles := map[string]string{"color": "red"}
	data := map[string]any{"k": "v"}

	element := layout.Normalize(layout.PlacedElement{
		StyleOverrides:  styles,
		ExtraAttributes: map[string]any{"data": data},
	})

	element.StyleOverrides["color"] = "blue"
	element.ExtraAttributes["data"].(map[string]any)["k"] = "changed"

	if styles["color"] != "red" {
		t.Errorf("Normalized element shares styles with its input")
	}

	if data["k"] != "v" {
		t.Errorf("Normalized element shares attributes with its input")
	}
}

func TestDecodeLayout(t *testing.T) {
	data := `[
		{"id": "a", "html": "<p>x</p>", "x": 10, "y": 2.5, "type": "P", "styles": {"width": "100px", "z-index": 3}, "attributes": {"data-n": 1, "class": "c"}},
		{"id": 7},
		null
	]`

	got, err := layout.DecodeLayout([]byte(data))
	if err != nil {
		t.Fatal(err)
	}

	want := []layout.PlacedElement{
		{
			ID:              "a",
			Markup:          "<p>x</p>",
			X:               "10",
			Y:               "2.5",
			Kind:            "P",
			StyleOverrides:  map[string]string{"width": "100px", "z-index": "3"},
			ExtraAttributes: map[string]any{"data-n": json.Number("1"), "class": "c"},
			Width:           "100px",
			Position:        "absolute",
		},
		{ID: "7", X: "0", Y: "0", Kind: "div", StyleOverrides: map[string]string{}, ExtraAttributes: map[string]any{}, Position: "absolute"},
		{X: "0", Y: "0", Kind: "div", StyleOverrides: map[string]string{}, ExtraAttributes: map[string]any{}, Position: "absolute"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Elements do not match (-want +got):\n%s", diff)
	}
}

func TestDecodeLayout_Malformed(t *testing.T) {
	for _, input := range []string{"", "{", `{"id": "a"}`, `[{"id": "a"`} {
		if _, err := layout.DecodeLayout([]byte(input)); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

func TestNormalizeBatch(t *testing.T) {
	got := layout.NormalizeBatch([]any{
		map[string]any{"id": "first"},
		nil,
		layout.PlacedElement{ID: "third"},
	})

	var ids []string
	for _, e := range got {
		ids = append(ids, e.ID)
	}

	if diff := cmp.Diff([]string{"first", "", "third"}, ids); diff != "" {
		t.Errorf("Order does not match (-want +got):\n%s", diff)
	}
}
