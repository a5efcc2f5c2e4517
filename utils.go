package layout

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var markup = regexp.MustCompile(`<[^>]*>`)

// stripTags removes everything that looks like a tag and trims the rest
func stripTags(s string) string {
	return strings.TrimSpace(markup.ReplaceAllString(s, ""))
}

// plainText returns the single text leaf for s or nothing if s is blank
func plainText(s string) []*Node {
	if s == "" {
		return nil
	}

	return []*Node{NewText(s)}
}

// fallback returns the first non-empty value
func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// stringify formats a loosely typed (JSON decoded) value as a string
func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprint(value)
	}
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isTagNameChar(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '-' || r == '_' || r == ':' || r == '.'
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r', '\f':
		return true
	default:
		return false
	}
}
