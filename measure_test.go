package layout

import "testing"

func TestMeasure(t *testing.T) {
	tt := []struct {
		name  string
		input string
		value float64
		unit  string
	}{
		{name: "px", input: "131.02px", value: 131.02, unit: "px"},
		{name: "em", input: ".025em", value: .025, unit: "em"},
		{name: "negative float", input: "-.025em", value: -.025, unit: "em"},
		{name: "negative int", input: "-25em", value: -25, unit: "em"},
		{name: "%", input: "25%", value: 25, unit: "%"},
		{name: "upper case unit", input: "4PX", value: 4, unit: "px"},
		{name: "bare number", input: "10", value: 10, unit: ""},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			v, u, err := Measure(tc.input)
			if err != nil {
				t.Fatal(err)
			}

			if v != tc.value {
				t.Errorf("Value does not match: want %v, got %v", tc.value, v)
			}

			if u != tc.unit {
				t.Errorf("Unit does not match: want %v, got %v", tc.unit, u)
			}
		})
	}
}

func TestMeasure_Invalid(t *testing.T) {
	for _, input := range []string{"", "px", "auto", "calc(1px + 2px)", "10 px 2"} {
		if _, _, err := Measure(input); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

func TestPixels(t *testing.T) {
	tt := map[string]string{
		"10":        "10px",
		" 7 ":       "7px",
		"-2.5":      "-2.5px",
		"10px":      "10px",
		"50%":       "50%",
		"2em":       "2em",
		"auto":      "auto",
		"calc(1px)": "calc(1px)",
	}

	for input, want := range tt {
		if got := pixels(input); got != want {
			t.Errorf("pixels(%q): want %q, got %q", input, want, got)
		}
	}
}
