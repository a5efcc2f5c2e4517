package layout

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var measure = regexp.MustCompile(`^(-?[0-9]*(?:\.[0-9]+)?)(%|[a-zA-Z]*)$`)

// Measure parses measurement value, a number and optional units, for example: 10, 5.5px, 50%, 2em
func Measure(raw string) (float64, string, error) {
	match := measure.FindStringSubmatch(strings.TrimSpace(raw))
	if len(match) == 0 {
		return 0, "", errors.New("unable to parse measurement")
	}

	number, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, "", err
	}

	return number, strings.ToLower(match[2]), nil
}

// pixels turns bare number into pixel offset ("10" becomes "10px"), values which already have units or
// can't be parsed as measurement are returned as is
func pixels(raw string) string {
	_, unit, err := Measure(raw)
	if err != nil || unit != "" {
		return raw
	}

	return strings.TrimSpace(raw) + "px"
}
